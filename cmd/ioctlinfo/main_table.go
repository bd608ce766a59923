package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevmo314/go-ntioctl/pkg/ctlcode"
	"github.com/kevmo314/go-ntioctl/pkg/ks"
	"github.com/kevmo314/go-ntioctl/pkg/scsi"
)

type cmdTable struct {
	cmdTable *cobra.Command
	global   *cmdGlobal

	flagPackage string
}

type tableRow struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

func tableFor(pkg string) (ctlcode.Table, error) {
	switch pkg {
	case "ks":
		return ks.Codes, nil
	case "scsi":
		return scsi.Codes, nil
	case "all":
		return allCodes(), nil
	}
	return nil, fmt.Errorf("Unknown package %q", pkg)
}

func (c *cmdTable) command() *cobra.Command {
	c.cmdTable = &cobra.Command{
		Use:   "table",
		Short: "List the named control codes of a package",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	c.cmdTable.Flags().StringVar(&c.flagPackage, "package", "all", "Code table to list (ks, scsi or all)"+"``")

	return c.cmdTable
}

func (c *cmdTable) run(cmd *cobra.Command, args []string) error {
	table, err := tableFor(c.flagPackage)
	if err != nil {
		return err
	}

	err = table.Validate()
	if err != nil {
		c.global.logger.WithError(err).Warn("Code table has duplicates")
	}

	rows := make([]tableRow, 0, len(table))
	for _, n := range table {
		rows = append(rows, tableRow{Name: n.Name, Code: n.Code.String()})
	}

	if c.global.flagFormat == "yaml" {
		return writeYAML(c.global.out, rows)
	}
	for _, r := range rows {
		fmt.Fprintf(c.global.out, "%s %s\n", r.Code, r.Name)
	}
	return nil
}
