// Package iscsi lays out the control-plane structures of the Microsoft iSCSI
// initiator (iscsidsc.h): login options, target portals and session ids.
package iscsi

import "math"

// ISCSI_AUTH_TYPES values.
const (
	ISCSI_NO_AUTH_TYPE          uint32 = 0
	ISCSI_CHAP_AUTH_TYPE        uint32 = 1
	ISCSI_MUTUAL_CHAP_AUTH_TYPE uint32 = 2
)

// ISCSI_DIGEST_TYPES values.
const (
	ISCSI_DIGEST_TYPE_NONE   uint32 = 0
	ISCSI_DIGEST_TYPE_CRC32C uint32 = 1
)

// ISCSI_LOGIN_FLAG_* values. RESERVED1 is set by the service itself.
const (
	ISCSI_LOGIN_FLAG_REQUIRE_IPSEC           uint32 = 0x00000001
	ISCSI_LOGIN_FLAG_MULTIPATH_ENABLED       uint32 = 0x00000002
	ISCSI_LOGIN_FLAG_RESERVED1               uint32 = 0x00000004
	ISCSI_LOGIN_FLAG_ALLOW_PORTAL_HOPPING    uint32 = 0x00000008
	ISCSI_LOGIN_FLAG_USE_RADIUS_RESPONSE     uint32 = 0x00000010
	ISCSI_LOGIN_FLAG_USE_RADIUS_VERIFICATION uint32 = 0x00000020
)

// ISCSI_LOGIN_OPTIONS_* bits of LoginOptions.InformationSpecified.
const (
	ISCSI_LOGIN_OPTIONS_HEADER_DIGEST         uint32 = 0x00000001
	ISCSI_LOGIN_OPTIONS_DATA_DIGEST           uint32 = 0x00000002
	ISCSI_LOGIN_OPTIONS_MAXIMUM_CONNECTIONS   uint32 = 0x00000004
	ISCSI_LOGIN_OPTIONS_DEFAULT_TIME_2_WAIT   uint32 = 0x00000008
	ISCSI_LOGIN_OPTIONS_DEFAULT_TIME_2_RETAIN uint32 = 0x00000010
	ISCSI_LOGIN_OPTIONS_USERNAME              uint32 = 0x00000020
	ISCSI_LOGIN_OPTIONS_PASSWORD              uint32 = 0x00000040
	ISCSI_LOGIN_OPTIONS_AUTH_TYPE             uint32 = 0x00000080
)

// ISCSI_SECURITY_FLAG_* values for target portals.
const (
	ISCSI_SECURITY_FLAG_VALID                    uint64 = 0x00000001
	ISCSI_SECURITY_FLAG_IKE_IPSEC_ENABLED        uint64 = 0x00000002
	ISCSI_SECURITY_FLAG_MAIN_MODE_ENABLED        uint64 = 0x00000004
	ISCSI_SECURITY_FLAG_AGGRESSIVE_MODE_ENABLED  uint64 = 0x00000008
	ISCSI_SECURITY_FLAG_PFS_ENABLED              uint64 = 0x00000010
	ISCSI_SECURITY_FLAG_TRANSPORT_MODE_PREFERRED uint64 = 0x00000020
	ISCSI_SECURITY_FLAG_TUNNEL_MODE_PREFERRED    uint64 = 0x00000040
)

const (
	ISCSI_LOGIN_OPTIONS_VERSION uint32 = 0

	ISCSI_ALL_INITIATOR_PORTS uint32 = math.MaxUint32
	ISCSI_ANY_INITIATOR_PORT  uint32 = math.MaxUint32

	MAX_ISCSI_PORTAL_NAME_LEN    = 256
	MAX_ISCSI_PORTAL_ADDRESS_LEN = 256
	MAX_ISCSI_HBANAME_LEN        = 256
	MAX_ISCSI_NAME_LEN           = 223
	MAX_ISCSI_ALIAS_LEN          = 255
	MAX_PATH                     = 260

	// DefaultPortalPort is the port targets listen on when a portal leaves
	// Socket unset.
	DefaultPortalPort uint16 = 3260
)

// CHAP secrets are 96 to 128 bits.
const (
	MinChapSecretLength = 12
	MaxChapSecretLength = 16
)
