package main

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeebo/inifile"
	"gopkg.in/yaml.v3"
	"zombiezen.com/go/log"
)

var dumpYAML bool

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the file as inicfg would write it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := openConfig()
		if err != nil {
			return err
		}
		defer cfg.Close()

		if dumpYAML {
			return writeYAML(cmd.OutOrStdout(), cfg)
		}
		_, err = cfg.WriteTo(cmd.OutOrStdout())
		return err
	},
}

// writeYAML writes the sections of cfg as a YAML mapping of section names
// to mappings of keys to values, both in file order. Continuation lines are
// joined to the value before them with a newline, and definitions outside
// any section are left out.
func writeYAML(w io.Writer, cfg *inifile.Config) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	var sect, last *yaml.Node

	cur := cfg.Cursor()
	for cur.Next() {
		switch cur.Kind() {
		case inifile.Section:
			sect, last = &yaml.Node{Kind: yaml.MappingNode}, nil
			root.Content = append(root.Content, str(cur.Section()), sect)
		case inifile.Definition:
			if sect == nil {
				continue
			}
			last = str(cur.Value())
			sect.Content = append(sect.Content, str(cur.Key()), last)
		case inifile.Continuation:
			if last != nil {
				last.Value += "\n" + cur.Value()
			}
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return err
	}
	return enc.Close()
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Reformat the file, aligning keys and spacing sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return err
		}
		entries, err := inifile.Parse(data)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := inifile.Format(&buf, entries); err != nil {
			return err
		}
		if !fmtWrite {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if bytes.Equal(buf.Bytes(), data) {
			log.Debugf(cmd.Context(), "%s already formatted", filePath)
			return nil
		}
		if err := os.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
			return err
		}
		log.Infof(cmd.Context(), "Formatted %s", filePath)
		return nil
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpYAML, "yaml", false, "print sections as YAML")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the file")
	rootCmd.AddCommand(dumpCmd, fmtCmd)
}
