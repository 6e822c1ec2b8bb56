package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arloliu/enumrefl/descriptor"
)

func inspectCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <catalog> [enum...]",
		Short: "Print the descriptors of a catalog",
		Long: `Print every descriptor of a catalog as a table of index, value, label and metadata.

Examples:
  enumrefl inspect enums.yaml
  enumrefl inspect --verbose enums.yaml color
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(args[0], opts)
			if err != nil {
				return err
			}
			defer c.Close()

			names := args[1:]
			if len(names) == 0 {
				names = c.Names()
			}

			for _, name := range names {
				d, err := c.Get(name)
				if err != nil {
					return err
				}
				printDescriptor(cmd.OutOrStdout(), d, opts.verbose)
			}

			return nil
		},
	}

	return cmd
}

func printDescriptor(w io.Writer, d *descriptor.Descriptor, verbose bool) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("Enum '%s' %d items", d.Name(), d.ValueCount()))
	tbl.AppendHeader(table.Row{"#", "Value", "Label", "Meta"})

	for i := range d.ValueCount() {
		idx := descriptor.Index(i)
		label, _ := d.LabelAt(idx)
		tbl.AppendRow(table.Row{i, d.ValueAt(idx), label, metaText(d, idx, verbose)})
	}

	tbl.AppendFooter(table.Row{"", "", "blob", humanize.Bytes(uint64(len(d.Blob())))})

	fmt.Fprintln(w, tbl.Render())
}

func metaText(d *descriptor.Descriptor, i descriptor.Index, verbose bool) string {
	meta, _ := d.MetadataAt(i)
	switch {
	case verbose && meta != nil:
		return fmt.Sprint(meta)
	case verbose:
		return ""
	case meta != nil:
		return "YES"
	default:
		return "NO"
	}
}
