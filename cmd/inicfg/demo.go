package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs/v2"
	"github.com/zeebo/inifile"
	"github.com/zeebo/inifile/profile"
	"zombiezen.com/go/log"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write, read, update and delete sample values in the file",
	Long: `demo walks through the library: it writes two sections, reads the
values back in several ways, updates one in memory, then deletes a key and a
whole section and commits the result.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context(), cmd.OutOrStdout(), filePath)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(ctx context.Context, w io.Writer, path string) error {
	if err := demoWrite(ctx, path); err != nil {
		return errs.Wrap(err)
	}
	if err := demoRead(ctx, w, path); err != nil {
		return errs.Wrap(err)
	}
	if err := demoDelete(ctx, path); err != nil {
		return errs.Wrap(err)
	}
	return nil
}

func demoWrite(ctx context.Context, path string) error {
	cfg, err := inifile.Open(path, true)
	if err != nil {
		return err
	}
	defer cfg.Close()
	log.Infof(ctx, "Opened %s", path)

	if err := cfg.Set("section1", "entry1", "abc"); err != nil {
		return err
	}
	log.Infof(ctx, "Wrote section1:entry1")

	if err := cfg.Setf("section1", "entry2", "%d %#X", 123, 0x12AC); err != nil {
		return err
	}
	log.Infof(ctx, "Wrote section1:entry2")

	if err := cfg.Setf("section1", "entry3", "%d", 2017); err != nil {
		return err
	}
	log.Infof(ctx, "Wrote section1:entry3")

	if err := cfg.Commit(); err != nil {
		return err
	}

	if err := profile.WriteString(ctx, "section1", "entry4", "256 300", path); err != nil {
		return err
	}
	log.Infof(ctx, "Wrote section1:entry4")

	if err := profile.WriteString(ctx, "section2", "entry1", "test", path); err != nil {
		return err
	}
	log.Infof(ctx, "Wrote section2:entry1")
	return nil
}

func demoRead(ctx context.Context, w io.Writer, path string) error {
	cfg, err := inifile.Open(path, false)
	if err != nil {
		return err
	}
	defer cfg.Close()

	for _, key := range []string{"entry1", "entry2"} {
		v, err := cfg.String("section1", key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "section1:%s -- %s\n", key, v)
		log.Infof(ctx, "Read section1:%s -- %s", key, v)
	}

	n, err := cfg.Int("section1", "entry3")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "section1:entry3 -- %d\n", n)

	var scanned int
	if err := cfg.Scan("section1", "entry3", "%d", &scanned); err != nil {
		return err
	}
	fmt.Fprintf(w, "scanned section1:entry3 -- %d\n", scanned)

	// Updated in memory only; Close drops it.
	if err := cfg.Setf("section1", "entry3", "%d", 201702); err != nil {
		return err
	}
	if err := cfg.Scan("section1", "entry3", "%d", &scanned); err != nil {
		return err
	}
	fmt.Fprintf(w, "updated section1:entry3 -- %d\n", scanned)
	log.Infof(ctx, "Updated section1:entry3 -- %d", scanned)

	v, err := cfg.String("section2", "entry1")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "section2:entry1 -- %s\n", v)
	return nil
}

func demoDelete(ctx context.Context, path string) error {
	cfg, err := inifile.Open(path, false)
	if err != nil {
		return err
	}
	defer cfg.Close()

	if err := cfg.DeleteKey("section1", "entry1"); err != nil {
		return err
	}
	log.Infof(ctx, "Deleted section1:entry1")

	if err := cfg.DeleteSection("section2"); err != nil {
		return err
	}
	log.Infof(ctx, "Deleted section2")

	return cfg.Commit()
}
