package ks

import "github.com/kevmo314/go-ntioctl/pkg/guid"

// Property, event and method sets.
var (
	KSPROPSETID_General                   = guid.GUID{Data1: 0x1464eda5, Data2: 0x6a8f, Data3: 0x11d1, Data4: [8]byte{0x9a, 0xa7, 0x00, 0xa0, 0xc9, 0x22, 0x31, 0x96}}
	KSPROPSETID_Pin                       = guid.GUID{Data1: 0x8c134960, Data2: 0x51ad, Data3: 0x11cf, Data4: [8]byte{0x87, 0x8a, 0x94, 0xf8, 0x01, 0xc1, 0x00, 0x00}}
	KSPROPSETID_Connection                = guid.GUID{Data1: 0x1d58c920, Data2: 0xac9b, Data3: 0x11cf, Data4: [8]byte{0xa5, 0xd6, 0x28, 0xdb, 0x04, 0xc1, 0x00, 0x00}}
	KSPROPSETID_Topology                  = guid.GUID{Data1: 0x720d4ac0, Data2: 0x7533, Data3: 0x11d0, Data4: [8]byte{0xa5, 0xd6, 0x28, 0xdb, 0x04, 0xc1, 0x00, 0x00}}
	KSPROPSETID_Stream                    = guid.GUID{Data1: 0x65aaba60, Data2: 0x98ae, Data3: 0x11cf, Data4: [8]byte{0xa1, 0x0d, 0x00, 0x20, 0xaf, 0xd1, 0x56, 0xe4}}
	KSPROPSETID_StreamAllocator           = guid.GUID{Data1: 0xcf6e4342, Data2: 0xec87, Data3: 0x11cf, Data4: [8]byte{0xa1, 0x30, 0x00, 0x20, 0xaf, 0xd1, 0x56, 0xe4}}
	KSPROPSETID_Clock                     = guid.GUID{Data1: 0xdf12a4c0, Data2: 0xac17, Data3: 0x11cf, Data4: [8]byte{0xa5, 0xd6, 0x28, 0xdb, 0x04, 0xc1, 0x00, 0x00}}
	KSPROPSETID_Quality                   = guid.GUID{Data1: 0xd16ad380, Data2: 0xac1a, Data3: 0x11cf, Data4: [8]byte{0xa5, 0xd6, 0x28, 0xdb, 0x04, 0xc1, 0x00, 0x00}}
	KSPROPSETID_Audio                     = guid.GUID{Data1: 0x45ffaaa0, Data2: 0x6e1b, Data3: 0x11d0, Data4: [8]byte{0xbc, 0xf2, 0x44, 0x45, 0x53, 0x54, 0x00, 0x00}}
	PROPSETID_VIDCAP_CAMERACONTROL        = guid.GUID{Data1: 0xc6e13370, Data2: 0x30ac, Data3: 0x11d0, Data4: [8]byte{0xa1, 0x8c, 0x00, 0xa0, 0xc9, 0x11, 0x89, 0x56}}
	PROPSETID_VIDCAP_VIDEOPROCAMP         = guid.GUID{Data1: 0xc6e13360, Data2: 0x30ac, Data3: 0x11d0, Data4: [8]byte{0xa1, 0x8c, 0x00, 0xa0, 0xc9, 0x11, 0x89, 0x56}}
	KSPROPERTYSETID_ExtendedCameraControl = guid.GUID{Data1: 0x1cb79112, Data2: 0xc0d2, Data3: 0x4213, Data4: [8]byte{0x9c, 0xa6, 0xcd, 0x4f, 0xdb, 0x92, 0x79, 0x72}}
	KSPROPTYPESETID_General               = guid.GUID{Data1: 0x97e99ba0, Data2: 0xbdea, Data3: 0x11cf, Data4: [8]byte{0xa5, 0xd6, 0x28, 0xdb, 0x04, 0xc1, 0x00, 0x00}}
	KSEVENTSETID_Connection               = guid.GUID{Data1: 0x7f4bcbe0, Data2: 0x9ea5, Data3: 0x11cf, Data4: [8]byte{0xa5, 0xd6, 0x28, 0xdb, 0x04, 0xc1, 0x00, 0x00}}
	KSEVENTSETID_Clock                    = guid.GUID{Data1: 0x364d8e20, Data2: 0x62c7, Data3: 0x11cf, Data4: [8]byte{0xa5, 0xd6, 0x28, 0xdb, 0x04, 0xc1, 0x00, 0x00}}
	KSMETHODSETID_StreamAllocator         = guid.GUID{Data1: 0xcf6e4341, Data2: 0xec87, Data3: 0x11cf, Data4: [8]byte{0xa1, 0x30, 0x00, 0x20, 0xaf, 0xd1, 0x56, 0xe4}}
)

// Filter categories.
var (
	KSCATEGORY_AUDIO         = guid.GUID{Data1: 0x6994ad04, Data2: 0x93ef, Data3: 0x11d0, Data4: [8]byte{0xa3, 0xcc, 0x00, 0xa0, 0xc9, 0x22, 0x31, 0x96}}
	KSCATEGORY_VIDEO         = guid.GUID{Data1: 0x6994ad05, Data2: 0x93ef, Data3: 0x11d0, Data4: [8]byte{0xa3, 0xcc, 0x00, 0xa0, 0xc9, 0x22, 0x31, 0x96}}
	KSCATEGORY_CAPTURE       = guid.GUID{Data1: 0x65e8773d, Data2: 0x8f56, Data3: 0x11d0, Data4: [8]byte{0xa3, 0xb9, 0x00, 0xa0, 0xc9, 0x22, 0x31, 0x96}}
	KSCATEGORY_RENDER        = guid.GUID{Data1: 0x65e8773e, Data2: 0x8f56, Data3: 0x11d0, Data4: [8]byte{0xa3, 0xb9, 0x00, 0xa0, 0xc9, 0x22, 0x31, 0x96}}
	KSCATEGORY_VIDEO_CAMERA  = guid.GUID{Data1: 0xe5323777, Data2: 0xf976, Data3: 0x4f5b, Data4: [8]byte{0x9b, 0x55, 0xb9, 0x46, 0x99, 0xc4, 0x6e, 0x44}}
	KSCATEGORY_SENSOR_CAMERA = guid.GUID{Data1: 0x24e552d7, Data2: 0x6523, Data3: 0x47f7, Data4: [8]byte{0xa6, 0x47, 0xd3, 0x46, 0x5b, 0xf1, 0xf5, 0xca}}
)

// Topology node types.
var (
	KSNODETYPE_VOLUME = guid.GUID{Data1: 0x3a5acc00, Data2: 0xc557, Data3: 0x11d0, Data4: [8]byte{0x8a, 0x2b, 0x00, 0xa0, 0xc9, 0x25, 0x5a, 0xc1}}
	KSNODETYPE_MUTE   = guid.GUID{Data1: 0x02b223c0, Data2: 0xc557, Data3: 0x11d0, Data4: [8]byte{0x8a, 0x2b, 0x00, 0xa0, 0xc9, 0x25, 0x5a, 0xc1}}
	KSNODETYPE_DAC    = guid.GUID{Data1: 0x507ae360, Data2: 0xc554, Data3: 0x11d0, Data4: [8]byte{0x8a, 0x2b, 0x00, 0xa0, 0xc9, 0x25, 0x5a, 0xc1}}
	KSNODETYPE_ADC    = guid.GUID{Data1: 0x4d837fe0, Data2: 0xc555, Data3: 0x11d0, Data4: [8]byte{0x8a, 0x2b, 0x00, 0xa0, 0xc9, 0x25, 0x5a, 0xc1}}
)

// Data format major types, subtypes and specifiers. The wildcards are
// GUID_NULL.
var (
	KSDATAFORMAT_TYPE_WILDCARD          = guid.Null
	KSDATAFORMAT_TYPE_VIDEO             = guid.GUID{Data1: 0x73646976, Data2: 0x0000, Data3: 0x0010, Data4: [8]byte{0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}}
	KSDATAFORMAT_TYPE_AUDIO             = guid.GUID{Data1: 0x73647561, Data2: 0x0000, Data3: 0x0010, Data4: [8]byte{0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}}
	KSDATAFORMAT_TYPE_STREAM            = guid.GUID{Data1: 0xe436eb83, Data2: 0x524f, Data3: 0x11ce, Data4: [8]byte{0x9f, 0x53, 0x00, 0x20, 0xaf, 0x0b, 0xa7, 0x70}}
	KSDATAFORMAT_SUBTYPE_WILDCARD       = guid.Null
	KSDATAFORMAT_SUBTYPE_NONE           = guid.GUID{Data1: 0xe436eb8e, Data2: 0x524f, Data3: 0x11ce, Data4: [8]byte{0x9f, 0x53, 0x00, 0x20, 0xaf, 0x0b, 0xa7, 0x70}}
	KSDATAFORMAT_SUBTYPE_PCM            = guid.GUID{Data1: 0x00000001, Data2: 0x0000, Data3: 0x0010, Data4: [8]byte{0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}}
	KSDATAFORMAT_SUBTYPE_MJPG           = guid.GUID{Data1: 0x47504a4d, Data2: 0x0000, Data3: 0x0010, Data4: [8]byte{0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}}
	KSDATAFORMAT_SUBTYPE_YUY2           = guid.GUID{Data1: 0x32595559, Data2: 0x0000, Data3: 0x0010, Data4: [8]byte{0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}}
	KSDATAFORMAT_SUBTYPE_NV12           = guid.GUID{Data1: 0x3231564e, Data2: 0x0000, Data3: 0x0010, Data4: [8]byte{0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}}
	KSDATAFORMAT_SPECIFIER_WILDCARD     = guid.Null
	KSDATAFORMAT_SPECIFIER_NONE         = guid.GUID{Data1: 0x0f6417d6, Data2: 0xc318, Data3: 0x11d0, Data4: [8]byte{0xa4, 0x3f, 0x00, 0xa0, 0xc9, 0x22, 0x31, 0x96}}
	KSDATAFORMAT_SPECIFIER_WAVEFORMATEX = guid.GUID{Data1: 0x05589f81, Data2: 0xc356, Data3: 0x11ce, Data4: [8]byte{0xbf, 0x01, 0x00, 0xaa, 0x00, 0x55, 0x59, 0x5a}}
	KSDATAFORMAT_SPECIFIER_VIDEOINFO    = guid.GUID{Data1: 0x05589f80, Data2: 0xc356, Data3: 0x11ce, Data4: [8]byte{0xbf, 0x01, 0x00, 0xaa, 0x00, 0x55, 0x59, 0x5a}}
)

// KSPROPERTY_GENERAL ids.
const (
	KSPROPERTY_GENERAL_COMPONENTID uint32 = 0
)

// KSPROPERTY_PIN ids.
const (
	KSPROPERTY_PIN_CINSTANCES uint32 = iota
	KSPROPERTY_PIN_CTYPES
	KSPROPERTY_PIN_DATAFLOW
	KSPROPERTY_PIN_DATARANGES
	KSPROPERTY_PIN_DATAINTERSECTION
	KSPROPERTY_PIN_INTERFACES
	KSPROPERTY_PIN_MEDIUMS
	KSPROPERTY_PIN_COMMUNICATION
	KSPROPERTY_PIN_GLOBALCINSTANCES
	KSPROPERTY_PIN_NECESSARYINSTANCES
	KSPROPERTY_PIN_PHYSICALCONNECTION
	KSPROPERTY_PIN_CATEGORY
	KSPROPERTY_PIN_NAME
	KSPROPERTY_PIN_CONSTRAINEDDATARANGES
	KSPROPERTY_PIN_PROPOSEDATAFORMAT
	KSPROPERTY_PIN_PROPOSEDATAFORMAT2
	KSPROPERTY_PIN_MODEDATAFORMATS
)

// KSPIN_DATAFLOW values.
const (
	KSPIN_DATAFLOW_IN  uint32 = 1
	KSPIN_DATAFLOW_OUT uint32 = 2
)

// KSPROPERTY_CONNECTION ids.
const (
	KSPROPERTY_CONNECTION_STATE uint32 = iota
	KSPROPERTY_CONNECTION_PRIORITY
	KSPROPERTY_CONNECTION_DATAFORMAT
	KSPROPERTY_CONNECTION_ALLOCATORFRAMING
	KSPROPERTY_CONNECTION_PROPOSEDATAFORMAT
	KSPROPERTY_CONNECTION_ACQUIREORDERING
	KSPROPERTY_CONNECTION_ALLOCATORFRAMING_EX
	KSPROPERTY_CONNECTION_STARTAT
)

// KSPROPERTY_TOPOLOGY ids.
const (
	KSPROPERTY_TOPOLOGY_CATEGORIES uint32 = iota
	KSPROPERTY_TOPOLOGY_NODES
	KSPROPERTY_TOPOLOGY_CONNECTIONS
	KSPROPERTY_TOPOLOGY_NAME
)

// KSPROPERTY_STREAM ids.
const (
	KSPROPERTY_STREAM_ALLOCATOR uint32 = iota
	KSPROPERTY_STREAM_QUALITY
	KSPROPERTY_STREAM_DEGRADATION
	KSPROPERTY_STREAM_MASTERCLOCK
	KSPROPERTY_STREAM_TIMEFORMAT
	KSPROPERTY_STREAM_PRESENTATIONTIME
	KSPROPERTY_STREAM_PRESENTATIONEXTENT
	KSPROPERTY_STREAM_FRAMETIME
	KSPROPERTY_STREAM_RATECAPABILITY
	KSPROPERTY_STREAM_RATE
	KSPROPERTY_STREAM_PIPE_ID
)

// KSPROPERTY_AUDIO ids. The enumeration starts at 1.
const (
	KSPROPERTY_AUDIO_LATENCY uint32 = iota + 1
	KSPROPERTY_AUDIO_COPY_PROTECTION
	KSPROPERTY_AUDIO_CHANNEL_CONFIG
	KSPROPERTY_AUDIO_VOLUMELEVEL
	KSPROPERTY_AUDIO_POSITION
	KSPROPERTY_AUDIO_DYNAMIC_RANGE
	KSPROPERTY_AUDIO_QUALITY
	KSPROPERTY_AUDIO_SAMPLING_RATE
	KSPROPERTY_AUDIO_DYNAMIC_SAMPLING_RATE
	KSPROPERTY_AUDIO_MIX_LEVEL_TABLE
	KSPROPERTY_AUDIO_MIX_LEVEL_CAPS
	KSPROPERTY_AUDIO_MUX_SOURCE
	KSPROPERTY_AUDIO_MUTE
	KSPROPERTY_AUDIO_BASS
	KSPROPERTY_AUDIO_MID
	KSPROPERTY_AUDIO_TREBLE
	KSPROPERTY_AUDIO_BASS_BOOST
	KSPROPERTY_AUDIO_EQ_LEVEL
	KSPROPERTY_AUDIO_NUM_EQ_BANDS
	KSPROPERTY_AUDIO_EQ_BANDS
	KSPROPERTY_AUDIO_AGC
	KSPROPERTY_AUDIO_DELAY
	KSPROPERTY_AUDIO_LOUDNESS
	KSPROPERTY_AUDIO_WIDE_MODE
	KSPROPERTY_AUDIO_WIDENESS
	KSPROPERTY_AUDIO_REVERB_LEVEL
	KSPROPERTY_AUDIO_CHORUS_LEVEL
	KSPROPERTY_AUDIO_DEV_SPECIFIC
	KSPROPERTY_AUDIO_DEMUX_DEST
	KSPROPERTY_AUDIO_STEREO_ENHANCE
	KSPROPERTY_AUDIO_MANUFACTURE_GUID
	KSPROPERTY_AUDIO_PRODUCT_GUID
	KSPROPERTY_AUDIO_CPU_RESOURCES
	KSPROPERTY_AUDIO_STEREO_SPEAKER_GEOMETRY
	KSPROPERTY_AUDIO_SURROUND_ENCODE
	KSPROPERTY_AUDIO_3D_INTERFACE
	KSPROPERTY_AUDIO_PEAKMETER
	KSPROPERTY_AUDIO_ALGORITHM_INSTANCE
	KSPROPERTY_AUDIO_FILTER_STATE
	KSPROPERTY_AUDIO_PREFERRED_STATUS
)

// KSPROPERTY_VIDCAP_CAMERACONTROL ids.
const (
	KSPROPERTY_CAMERACONTROL_PAN uint32 = iota
	KSPROPERTY_CAMERACONTROL_TILT
	KSPROPERTY_CAMERACONTROL_ROLL
	KSPROPERTY_CAMERACONTROL_ZOOM
	KSPROPERTY_CAMERACONTROL_EXPOSURE
	KSPROPERTY_CAMERACONTROL_IRIS
	KSPROPERTY_CAMERACONTROL_FOCUS
	KSPROPERTY_CAMERACONTROL_SCANMODE
	KSPROPERTY_CAMERACONTROL_PRIVACY
	KSPROPERTY_CAMERACONTROL_PANTILT
	KSPROPERTY_CAMERACONTROL_PAN_RELATIVE
	KSPROPERTY_CAMERACONTROL_TILT_RELATIVE
	KSPROPERTY_CAMERACONTROL_ROLL_RELATIVE
	KSPROPERTY_CAMERACONTROL_ZOOM_RELATIVE
	KSPROPERTY_CAMERACONTROL_EXPOSURE_RELATIVE
	KSPROPERTY_CAMERACONTROL_IRIS_RELATIVE
	KSPROPERTY_CAMERACONTROL_FOCUS_RELATIVE
	KSPROPERTY_CAMERACONTROL_PANTILT_RELATIVE
	KSPROPERTY_CAMERACONTROL_FOCAL_LENGTH
	KSPROPERTY_CAMERACONTROL_AUTO_EXPOSURE_PRIORITY
)

// KSPROPERTY_VIDCAP_VIDEOPROCAMP ids.
const (
	KSPROPERTY_VIDEOPROCAMP_BRIGHTNESS uint32 = iota
	KSPROPERTY_VIDEOPROCAMP_CONTRAST
	KSPROPERTY_VIDEOPROCAMP_HUE
	KSPROPERTY_VIDEOPROCAMP_SATURATION
	KSPROPERTY_VIDEOPROCAMP_SHARPNESS
	KSPROPERTY_VIDEOPROCAMP_GAMMA
	KSPROPERTY_VIDEOPROCAMP_COLORENABLE
	KSPROPERTY_VIDEOPROCAMP_WHITEBALANCE
	KSPROPERTY_VIDEOPROCAMP_BACKLIGHT_COMPENSATION
	KSPROPERTY_VIDEOPROCAMP_GAIN
	KSPROPERTY_VIDEOPROCAMP_DIGITAL_MULTIPLIER
	KSPROPERTY_VIDEOPROCAMP_DIGITAL_MULTIPLIER_LIMIT
	KSPROPERTY_VIDEOPROCAMP_WHITEBALANCE_COMPONENT
	KSPROPERTY_VIDEOPROCAMP_POWERLINE_FREQUENCY
)

// Flags of KSPROPERTY_CAMERACONTROL_S and KSPROPERTY_VIDEOPROCAMP_S.
const (
	KSPROPERTY_CAMERACONTROL_FLAGS_AUTO     uint32 = 0x0001
	KSPROPERTY_CAMERACONTROL_FLAGS_MANUAL   uint32 = 0x0002
	KSPROPERTY_CAMERACONTROL_FLAGS_ABSOLUTE uint32 = 0x0000
	KSPROPERTY_CAMERACONTROL_FLAGS_RELATIVE uint32 = 0x0010
	KSPROPERTY_VIDEOPROCAMP_FLAGS_AUTO      uint32 = 0x0001
	KSPROPERTY_VIDEOPROCAMP_FLAGS_MANUAL    uint32 = 0x0002
)

// KSEVENT_CONNECTION ids.
const (
	KSEVENT_CONNECTION_POSITIONUPDATE uint32 = iota
	KSEVENT_CONNECTION_DATADISCONTINUITY
	KSEVENT_CONNECTION_TIMEDISCONTINUITY
	KSEVENT_CONNECTION_PRIORITY
	KSEVENT_CONNECTION_ENDOFSTREAM
)

// KSEVENT_CLOCK_POSITION ids.
const (
	KSEVENT_CLOCK_INTERVAL_MARK uint32 = iota
	KSEVENT_CLOCK_POSITION_MARK
)

// KSMETHOD_STREAMALLOCATOR ids.
const (
	KSMETHOD_STREAMALLOCATOR_ALLOC uint32 = iota
	KSMETHOD_STREAMALLOCATOR_FREE
)
