package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := (&cmdGlobal{out: &out}).command()
	app.SetArgs(args)
	err := app.Execute()
	return out.String(), err
}

func writeDefinition(t *testing.T, content string) string {
	t.Helper()

	fname := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(content), 0644))
	return fname
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "0x2F0003")
	require.NoError(t, err)
	assert.Contains(t, out, "IOCTL_KS_PROPERTY")
	assert.Contains(t, out, "METHOD_NEITHER")
	assert.Contains(t, out, "device=0x002F")
}

func TestDecodeYAMLByName(t *testing.T) {
	out, err := run(t, "--format", "yaml", "decode", "IOCTL_SCSI_GET_ADDRESS", "266264")
	require.NoError(t, err)

	var decoded []decodedCode
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, decoded[0], decoded[1])
	assert.Equal(t, "0x00041018", decoded[0].Code)
	assert.Equal(t, "IOCTL_SCSI_GET_ADDRESS", decoded[0].Name)
	assert.Equal(t, "0x0004", decoded[0].DeviceType)
	assert.Equal(t, uint16(0x406), decoded[0].Function)
	assert.Equal(t, "METHOD_BUFFERED", decoded[0].Method)
}

func TestDecodeErrors(t *testing.T) {
	_, err := run(t, "decode", "IOCTL_NOT_A_CODE")
	assert.Error(t, err)

	_, err = run(t, "--format", "xml", "decode", "1")
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	out, err := run(t, "table", "--package", "scsi")
	require.NoError(t, err)
	assert.Contains(t, out, "0x0004D004 IOCTL_SCSI_PASS_THROUGH\n")
	assert.NotContains(t, out, "IOCTL_KS_")

	out, err = run(t, "--format", "yaml", "table", "--package", "ks")
	require.NoError(t, err)
	var rows []tableRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	assert.Contains(t, rows, tableRow{Name: "IOCTL_KS_PROPERTY", Code: "0x002F0003"})

	_, err = run(t, "table", "--package", "usb")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		code       string
		size       int
	}{
		{
			name: "ks property get",
			definition: `kind: ks-property
property:
  set: connection
  id: 0
  type: get
  output_size: 4
`,
			code: "0x002F0003",
			size: 24,
		},
		{
			name: "ks property set on a pin",
			definition: `kind: ks-property
property:
  set: "{8C134960-51AD-11CF-878A-94F801C10000}"
  id: 3
  type: set
  pin: 1
  value: 2
`,
			code: "0x002F0003",
			size: 36,
		},
		{
			name: "camera control",
			definition: `kind: ks-camera-control
camera:
  control: procamp
  id: 0
  type: set
  value: 128
`,
			code: "0x002F0003",
			size: 40,
		},
		{
			name: "scsi inquiry",
			definition: `kind: scsi-pass-through
scsi:
  command: inquiry
`,
			code: "0x0004D004",
			size: 124,
		},
		{
			name: "scsi inquiry from a 32-bit process",
			definition: `kind: scsi-pass-through
arch: "32"
scsi:
  command: inquiry
`,
			code: "0x0004D004",
			size: 116,
		},
		{
			name: "scsi raw cdb",
			definition: `kind: scsi-pass-through
scsi:
  cdb: "12 00 00 00 60 00"
  direction: in
  length: 96
  sense: 24
`,
			code: "0x0004D004",
			size: 176,
		},
		{
			name: "ata identify",
			definition: `kind: ata-pass-through
ata:
  command: identify
`,
			code: "0x0004D02C",
			size: 560,
		},
		{
			name: "iscsi login",
			definition: `kind: iscsi-login
login:
  username: iqn.x
  auth: chap
  password: 0123456789abcd
`,
			size: 64 + 5 + 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "--format", "yaml", "encode", writeDefinition(t, tt.definition))
			require.NoError(t, err)

			var got encodedOutput
			require.NoError(t, yaml.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.size, got.Size)
			assert.Len(t, got.Hex, 2*tt.size)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	for _, definition := range []string{
		"kind: usb-control\n",
		"kind: ks-property\n",
		"kind: ks-property\nproperty:\n  set: nope\n  type: get\n",
		"kind: ks-property\nproperty:\n  set: pin\n  type: sideways\n",
		"kind: scsi-pass-through\narch: arm\nscsi:\n  command: inquiry\n",
		"kind: scsi-pass-through\nscsi:\n  command: format-unit\n",
		"kind: scsi-pass-through\nscsi:\n  cdb: \"\"\n",
		"kind: iscsi-login\nlogin:\n  auth: chap\n  password: short\n",
		"kind: ks-property\nbogus: 1\n",
	} {
		_, err := run(t, "encode", writeDefinition(t, definition))
		assert.Error(t, err, definition)
	}
}

func TestEncodeText(t *testing.T) {
	out, err := run(t, "encode", writeDefinition(t, "kind: ata-pass-through\nata:\n  command: identify\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "code: 0x0004D02C IOCTL_ATA_PASS_THROUGH\n")
	assert.Contains(t, out, "output size: 560\n")
	assert.Contains(t, out, "00000000  30 00")
}
