package mega

// Command payloads. The "a" field selects the operation; the server
// correlates responses positionally, so no per-command id exists.
type loginRequest struct {
	Action string `json:"a"`
	User   string `json:"user"`
	Hash   string `json:"uh"`
}

type listFilesRequest struct {
	Action  string `json:"a"`
	Recurse int    `json:"c"`
}

type uploadRequest struct {
	Action string `json:"a"`
	Size   int64  `json:"s"`
	Target string `json:"t"`
}

type deleteRequest struct {
	Action string `json:"a"`
	Node   string `json:"n"`
}

type loginResponse struct {
	SessionID string `json:"csid"`
}

type listFilesResponse struct {
	Files []Node `json:"f"`
}

// Node type codes as they appear on the wire.
const (
	NodeTypeFile   = 0
	NodeTypeFolder = 1
	NodeTypeRoot   = 2
	NodeTypeInbox  = 3
	NodeTypeTrash  = 4
)

// Node is one entry of the remote file listing. The attribute blob stays
// encrypted — this client never decrypts node metadata.
type Node struct {
	Handle   string `json:"h"`
	Parent   string `json:"p"`
	Owner    string `json:"u"`
	Type     int    `json:"t"`
	Size     int64  `json:"s"`
	Attrs    string `json:"a"`
	Modified int64  `json:"ts"`
}
