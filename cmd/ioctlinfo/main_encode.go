package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevmo314/go-ntioctl"
)

type device interface {
	ntioctl.Device
	Close() error
}

// openDevice is replaced in tests.
var openDevice = func(path string) (device, error) {
	return ntioctl.Open(path)
}

type cmdEncode struct {
	cmdEncode *cobra.Command
	global    *cmdGlobal

	flagDevice string
}

func (c *cmdEncode) command() *cobra.Command {
	c.cmdEncode = &cobra.Command{
		Use:   "encode <filename|->",
		Short: "Encode the request described by a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	c.cmdEncode.Flags().StringVar(&c.flagDevice, "device", "",
		"Send the request to this device path and print the reply"+"``")

	return c.cmdEncode
}

func (c *cmdEncode) run(cmd *cobra.Command, args []string) error {
	def, err := getDefinition(args[0])
	if err != nil {
		return err
	}

	enc, err := def.encode()
	if err != nil {
		return fmt.Errorf("Failed to encode %s: %w", def.Kind, err)
	}

	out := encodedOutput{
		Kind:       def.Kind,
		Size:       len(enc.buf),
		OutputSize: enc.outSize,
		Hex:        hex.EncodeToString(enc.buf),
	}
	if enc.req != nil {
		code := enc.req.ControlCode()
		out.Code = code.String()
		if named, ok := allCodes().Lookup(code); ok {
			out.Name = named.Name
		}
	}

	c.global.logger.WithField("kind", def.Kind).WithField("size", len(enc.buf)).Debug("Encoded request")

	err = writeEncoded(c.global.out, c.global.flagFormat, out, enc.buf)
	if err != nil {
		return err
	}

	if c.flagDevice == "" {
		return nil
	}
	if enc.req == nil {
		return fmt.Errorf("Kind %s has no control code to send", def.Kind)
	}
	return c.send(enc)
}

func (c *cmdEncode) send(enc encoded) error {
	dev, err := openDevice(c.flagDevice)
	if err != nil {
		return fmt.Errorf("Failed to open %q: %w", c.flagDevice, err)
	}
	defer dev.Close()

	reply, err := ntioctl.NewDispatcher(dev, c.global.logger).Dispatch(enc.req, enc.outSize)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.global.out, "reply: %d bytes\n%s", len(reply), hex.Dump(reply))
	return nil
}
