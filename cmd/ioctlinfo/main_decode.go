package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kevmo314/go-ntioctl/pkg/ctlcode"
	"github.com/kevmo314/go-ntioctl/pkg/ks"
	"github.com/kevmo314/go-ntioctl/pkg/scsi"
)

type cmdDecode struct {
	cmdDecode *cobra.Command
	global    *cmdGlobal
}

type decodedCode struct {
	Code       string `yaml:"code"`
	Name       string `yaml:"name,omitempty"`
	DeviceType string `yaml:"device_type"`
	Function   uint16 `yaml:"function"`
	Method     string `yaml:"method"`
	Access     string `yaml:"access"`
	Common     bool   `yaml:"common"`
	Custom     bool   `yaml:"custom"`
}

func allCodes() ctlcode.Table {
	return ctlcode.Merge(ks.Codes, scsi.Codes)
}

func decodeCode(code ctlcode.Code, table ctlcode.Table) decodedCode {
	d := decodedCode{
		Code:       code.String(),
		DeviceType: fmt.Sprintf("0x%04X", uint16(code.DeviceType())),
		Function:   code.Function(),
		Method:     code.Method().String(),
		Access:     code.Access().String(),
		Common:     code.IsCommon(),
		Custom:     code.IsCustomFunction(),
	}
	if named, ok := table.Lookup(code); ok {
		d.Name = named.Name
	}
	return d
}

func parseCode(s string, table ctlcode.Table) (ctlcode.Code, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err == nil {
		return ctlcode.Code(v), nil
	}
	code, nameErr := table.ByName(s)
	if nameErr != nil {
		return 0, fmt.Errorf("Failed to parse %q: not a number or known name", s)
	}
	return code, nil
}

func (c *cmdDecode) command() *cobra.Command {
	c.cmdDecode = &cobra.Command{
		Use:   "decode <code|name>...",
		Short: "Split control codes into their fields",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.run,
	}

	return c.cmdDecode
}

func (c *cmdDecode) run(cmd *cobra.Command, args []string) error {
	table := allCodes()

	decoded := make([]decodedCode, 0, len(args))
	for _, arg := range args {
		code, err := parseCode(arg, table)
		if err != nil {
			return err
		}
		c.global.logger.WithField("code", code.String()).Debug("Decoding")
		decoded = append(decoded, decodeCode(code, table))
	}

	if c.global.flagFormat == "yaml" {
		return writeYAML(c.global.out, decoded)
	}
	for _, d := range decoded {
		name := d.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(c.global.out, "%s %s device=%s function=0x%03X method=%s access=%s\n",
			d.Code, name, d.DeviceType, d.Function, d.Method, d.Access)
	}
	return nil
}
