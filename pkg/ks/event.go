package ks

import (
	"github.com/pkg/errors"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

// KSEVENTF_* notification types. Only the handle types may be used from user
// mode; the rest name kernel objects.
const (
	KSEVENTF_EVENT_HANDLE     uint32 = 0x00000001
	KSEVENTF_SEMAPHORE_HANDLE uint32 = 0x00000002
	KSEVENTF_EVENT_OBJECT     uint32 = 0x00000004
	KSEVENTF_SEMAPHORE_OBJECT uint32 = 0x00000008
	KSEVENTF_DPC              uint32 = 0x00000010
	KSEVENTF_WORKITEM         uint32 = 0x00000020
	KSEVENTF_KSWORKITEM       uint32 = 0x00000080
)

// EventDataHeader is the part of KSEVENTDATA that precedes the notification
// union.
type EventDataHeader struct {
	NotificationType uint32
}

// EventDataOf maps to the `KSEVENTDATA` C struct with handles of width R.
// NotificationType selects which arm of the union Notification holds and must
// agree with it.
type EventDataOf[R abi.Ref] struct {
	EventDataHeader
	Notification Notification[R]
}

// EventData is KSEVENTDATA as laid out by the current process.
type EventData = EventDataOf[abi.NativePtr]

// EventData32 is KSEVENTDATA as laid out by a 32-bit process.
type EventData32 = EventDataOf[abi.Ptr32]

// Notification is one arm of the KSEVENTDATA union.
type Notification[R abi.Ref] interface {
	NotificationType() uint32
	marshalTo(e *abi.Encoder)
}

// EventHandleNotification signals a Win32 event handle.
type EventHandleNotification[R abi.Ref] struct {
	Event    R
	Reserved [2]R
}

func (n EventHandleNotification[R]) NotificationType() uint32 {
	return KSEVENTF_EVENT_HANDLE
}

func (n EventHandleNotification[R]) marshalTo(e *abi.Encoder) {
	abi.PutRef(e.Named("Event"), n.Event)
	abi.PutRef(e, n.Reserved[0])
	abi.PutRef(e, n.Reserved[1])
}

// SemaphoreHandleNotification releases a Win32 semaphore handle by
// Adjustment.
type SemaphoreHandleNotification[R abi.Ref] struct {
	Semaphore  R
	Reserved   uint32
	Adjustment int32
}

func (n SemaphoreHandleNotification[R]) NotificationType() uint32 {
	return KSEVENTF_SEMAPHORE_HANDLE
}

func (n SemaphoreHandleNotification[R]) marshalTo(e *abi.Encoder) {
	abi.PutRef(e.Named("Semaphore"), n.Semaphore)
	e.PutUint32(n.Reserved)
	e.PutInt32(n.Adjustment)
}

// NewEventHandleData returns event data signalling handle.
func NewEventHandleData[R abi.Ref](handle R) EventDataOf[R] {
	return EventDataOf[R]{
		EventDataHeader: EventDataHeader{NotificationType: KSEVENTF_EVENT_HANDLE},
		Notification:    EventHandleNotification[R]{Event: handle},
	}
}

// NewSemaphoreHandleData returns event data releasing handle by adjustment.
func NewSemaphoreHandleData[R abi.Ref](handle R, adjustment int32) EventDataOf[R] {
	return EventDataOf[R]{
		EventDataHeader: EventDataHeader{NotificationType: KSEVENTF_SEMAPHORE_HANDLE},
		Notification:    SemaphoreHandleNotification[R]{Semaphore: handle, Adjustment: adjustment},
	}
}

// Validate checks that the notification arm matches NotificationType.
func (d EventDataOf[R]) Validate() error {
	if d.Notification == nil {
		return errors.Wrapf(ErrInvalidNotification, "no notification for type %#x", d.NotificationType)
	}
	if got := d.Notification.NotificationType(); got != d.NotificationType {
		return errors.Wrapf(ErrInvalidNotification, "type %#x carries a %#x notification", d.NotificationType, got)
	}
	return nil
}

// MarshalTo writes the structure. The union is sized by its largest arm,
// three references wide. Callers must Validate first.
func (d EventDataOf[R]) MarshalTo(e *abi.Encoder) {
	size := abi.SizeOfRef[R]()
	e.Named("NotificationType").PutUint32(d.NotificationType)
	e.Align(size)
	start := e.Len()
	if d.Notification != nil {
		d.Notification.marshalTo(e)
	}
	e.PutZeros(start + 3*size - e.Len())
}

func (d EventDataOf[R]) MarshalBinary() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	e := abi.NewEncoder(4 + 4*abi.SizeOfRef[R]())
	d.MarshalTo(e)
	return e.Finish(), nil
}

// BuildEnableEventRequest returns the IOCTL_KS_ENABLE_EVENT request for ev.
// The event data travels in the output buffer; see Request.Split.
func BuildEnableEventRequest[R abi.Ref](ev Event, data EventDataOf[R]) (Request, error) {
	b, err := data.MarshalBinary()
	if err != nil {
		return Request{}, err
	}
	return NewEnableEventRequest(ev.WithFlags(ev.Flags|KSEVENT_TYPE_ENABLE), b), nil
}
