package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/enumrefl/descriptor"
)

var errLookupMode = errors.New("exactly one of --label or --value is required")

func lookupCmd(opts *rootOptions) *cobra.Command {
	var label string

	var value int64

	cmd := &cobra.Command{
		Use:   "lookup <catalog> <enum> (--label LABEL | --value VALUE)",
		Short: "Resolve a label to its value or a value to its label",
		Long: `Resolve one entry of an enum and print its index, value, label and metadata.

Examples:
  enumrefl lookup enums.yaml color --label RED
  enumrefl lookup enums.yaml color --value 4
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			byLabel := cmd.Flags().Changed("label")
			if byLabel == cmd.Flags().Changed("value") {
				return errLookupMode
			}

			c, err := loadCatalog(args[0], opts)
			if err != nil {
				return err
			}
			defer c.Close()

			d, err := c.Get(args[1])
			if err != nil {
				return err
			}

			var idx descriptor.Index
			if byLabel {
				idx = d.FindByLabel(label)
			} else {
				idx = d.FindByValue(value)
			}

			if idx == descriptor.NotFound {
				if byLabel {
					return fmt.Errorf("enum %q has no label %q", d.Name(), label)
				}

				return fmt.Errorf("enum %q has no value %d", d.Name(), value)
			}

			found, _ := d.LabelAt(idx)
			labelColor := color.New(color.FgGreen, color.Bold)
			fmt.Fprintf(cmd.OutOrStdout(), "#%d: %d (%s) meta=%s\n", idx, d.ValueAt(idx), labelColor.Sprint(found), metaText(d, idx, opts.verbose))

			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "label to resolve")
	cmd.Flags().Int64Var(&value, "value", 0, "value to resolve")
	cmd.MarkFlagsMutuallyExclusive("label", "value")

	return cmd
}
