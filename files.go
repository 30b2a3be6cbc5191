package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/twliao/mega-go/internal/mega"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List remote files and folders",
		Args:  cobra.NoArgs,
		RunE:  runLs,
	}
}

func newPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <local-path> [target-node]",
		Short: "Upload a file",
		Long: `Upload a local file. The optional target-node is the handle of the
destination folder; without it the file lands in the cloud drive root.

Content travels unencrypted; this client performs no node encryption.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runPut,
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <node-handle>",
		Short: "Delete a remote node",
		Args:  cobra.ExactArgs(1),
		RunE:  runRm,
	}
}

func runLs(cmd *cobra.Command, _ []string) error {
	logger := buildLogger()

	sc, _, err := newSession(cmd.Context(), logger)
	if err != nil {
		return err
	}

	nodes, err := sc.ListFiles(cmd.Context())
	if err != nil {
		return err
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(nodes)
	}

	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		modified := "-"
		if n.Modified > 0 {
			modified = formatTime(time.Unix(n.Modified, 0))
		}

		size := "-"
		if n.Type == mega.NodeTypeFile {
			size = formatSize(n.Size)
		}

		rows = append(rows, []string{n.Handle, nodeTypeString(n.Type), size, modified})
	}

	printTable(os.Stdout, []string{"HANDLE", "TYPE", "SIZE", "MODIFIED"}, rows)

	return nil
}

func runPut(cmd *cobra.Command, args []string) error {
	localPath := args[0]

	target := ""
	if len(args) > 1 {
		target = args[1]
	}

	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", localPath, err)
	}

	logger := buildLogger()

	sc, client, err := newSession(cmd.Context(), logger)
	if err != nil {
		return err
	}

	uploadURL, err := sc.InitiateUpload(cmd.Context(), info.Size(), target)
	if err != nil {
		return err
	}

	if err := client.UploadContent(cmd.Context(), uploadURL, f, info.Size()); err != nil {
		return err
	}

	statusf("Uploaded %s (%s)\n", localPath, formatSize(info.Size()))

	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	nodeID := args[0]

	logger := buildLogger()

	sc, _, err := newSession(cmd.Context(), logger)
	if err != nil {
		return err
	}

	if err := sc.DeleteNode(cmd.Context(), nodeID); err != nil {
		return err
	}

	statusf("Deleted %s\n", nodeID)

	return nil
}
