package scsi

import "github.com/kevmo314/go-ntioctl/pkg/ctlcode"

// Control codes from ntddscsi.h. The base is FILE_DEVICE_CONTROLLER.
const (
	IOCTL_SCSI_PASS_THROUGH             ctlcode.Code = 0x0004D004
	IOCTL_SCSI_MINIPORT                 ctlcode.Code = 0x0004D008
	IOCTL_SCSI_GET_INQUIRY_DATA         ctlcode.Code = 0x0004100C
	IOCTL_SCSI_GET_CAPABILITIES         ctlcode.Code = 0x00041010
	IOCTL_SCSI_PASS_THROUGH_DIRECT      ctlcode.Code = 0x0004D014
	IOCTL_SCSI_GET_ADDRESS              ctlcode.Code = 266264
	IOCTL_SCSI_RESCAN_BUS               ctlcode.Code = 0x0004101C
	IOCTL_SCSI_GET_DUMP_POINTERS        ctlcode.Code = 0x00041020
	IOCTL_SCSI_FREE_DUMP_POINTERS       ctlcode.Code = 0x00041024
	IOCTL_IDE_PASS_THROUGH              ctlcode.Code = 0x0004D028
	IOCTL_ATA_PASS_THROUGH              ctlcode.Code = 0x0004D02C
	IOCTL_ATA_PASS_THROUGH_DIRECT       ctlcode.Code = 0x0004D030
	IOCTL_ATA_MINIPORT                  ctlcode.Code = 0x0004D034
	IOCTL_MINIPORT_PROCESS_SERVICE_IRP  ctlcode.Code = 0x0004D038
	IOCTL_MPIO_PASS_THROUGH_PATH        ctlcode.Code = 0x0004D03C
	IOCTL_MPIO_PASS_THROUGH_PATH_DIRECT ctlcode.Code = 0x0004D040
	IOCTL_SCSI_PASS_THROUGH_EX          ctlcode.Code = 0x0004D044
	IOCTL_SCSI_PASS_THROUGH_DIRECT_EX   ctlcode.Code = 0x0004D048
)

// Codes lists the SCSI port control codes by header name.
var Codes = ctlcode.Table{
	{Name: "IOCTL_SCSI_PASS_THROUGH", Code: IOCTL_SCSI_PASS_THROUGH},
	{Name: "IOCTL_SCSI_MINIPORT", Code: IOCTL_SCSI_MINIPORT},
	{Name: "IOCTL_SCSI_GET_INQUIRY_DATA", Code: IOCTL_SCSI_GET_INQUIRY_DATA},
	{Name: "IOCTL_SCSI_GET_CAPABILITIES", Code: IOCTL_SCSI_GET_CAPABILITIES},
	{Name: "IOCTL_SCSI_PASS_THROUGH_DIRECT", Code: IOCTL_SCSI_PASS_THROUGH_DIRECT},
	{Name: "IOCTL_SCSI_GET_ADDRESS", Code: IOCTL_SCSI_GET_ADDRESS},
	{Name: "IOCTL_SCSI_RESCAN_BUS", Code: IOCTL_SCSI_RESCAN_BUS},
	{Name: "IOCTL_SCSI_GET_DUMP_POINTERS", Code: IOCTL_SCSI_GET_DUMP_POINTERS},
	{Name: "IOCTL_SCSI_FREE_DUMP_POINTERS", Code: IOCTL_SCSI_FREE_DUMP_POINTERS},
	{Name: "IOCTL_IDE_PASS_THROUGH", Code: IOCTL_IDE_PASS_THROUGH},
	{Name: "IOCTL_ATA_PASS_THROUGH", Code: IOCTL_ATA_PASS_THROUGH},
	{Name: "IOCTL_ATA_PASS_THROUGH_DIRECT", Code: IOCTL_ATA_PASS_THROUGH_DIRECT},
	{Name: "IOCTL_ATA_MINIPORT", Code: IOCTL_ATA_MINIPORT},
	{Name: "IOCTL_MINIPORT_PROCESS_SERVICE_IRP", Code: IOCTL_MINIPORT_PROCESS_SERVICE_IRP},
	{Name: "IOCTL_MPIO_PASS_THROUGH_PATH", Code: IOCTL_MPIO_PASS_THROUGH_PATH},
	{Name: "IOCTL_MPIO_PASS_THROUGH_PATH_DIRECT", Code: IOCTL_MPIO_PASS_THROUGH_PATH_DIRECT},
	{Name: "IOCTL_SCSI_PASS_THROUGH_EX", Code: IOCTL_SCSI_PASS_THROUGH_EX},
	{Name: "IOCTL_SCSI_PASS_THROUGH_DIRECT_EX", Code: IOCTL_SCSI_PASS_THROUGH_DIRECT_EX},
}
