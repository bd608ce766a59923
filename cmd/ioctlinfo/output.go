package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("Failed to encode output: %w", err)
	}
	return enc.Close()
}

type encodedOutput struct {
	Kind string `yaml:"kind"`
	Code string `yaml:"code,omitempty"`
	Name string `yaml:"name,omitempty"`
	Size int    `yaml:"size"`
	// OutputSize is the output buffer the driver expects, when it differs
	// from the input.
	OutputSize uint32 `yaml:"output_size,omitempty"`
	Hex        string `yaml:"hex"`
}

func writeEncoded(w io.Writer, format string, out encodedOutput, buf []byte) error {
	if format == "yaml" {
		return writeYAML(w, out)
	}

	code := out.Code
	if code == "" {
		code = "-"
	}
	fmt.Fprintf(w, "kind: %s\ncode: %s %s\nsize: %d\n", out.Kind, code, out.Name, out.Size)
	if out.OutputSize != 0 {
		fmt.Fprintf(w, "output size: %d\n", out.OutputSize)
	}
	_, err := io.WriteString(w, hex.Dump(buf))
	return err
}
