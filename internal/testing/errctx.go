package testing

import "github.com/sirkon/errors"

// ErrorContext collects the structured context attached to err and its wrapped errors.
// It returns nil if err carries no context.
func ErrorContext(err error) map[string]any {
	d := errors.GetContextDeliverer(err)
	if d == nil {
		return nil
	}

	c := contextConsumer{}
	d.Deliver(c)

	return c
}

type contextConsumer map[string]any

func (c contextConsumer) Bool(name string, value bool)       { c[name] = value }
func (c contextConsumer) Int(name string, value int)         { c[name] = value }
func (c contextConsumer) Int8(name string, value int8)       { c[name] = value }
func (c contextConsumer) Int16(name string, value int16)     { c[name] = value }
func (c contextConsumer) Int32(name string, value int32)     { c[name] = value }
func (c contextConsumer) Int64(name string, value int64)     { c[name] = value }
func (c contextConsumer) Uint(name string, value uint)       { c[name] = value }
func (c contextConsumer) Uint8(name string, value uint8)     { c[name] = value }
func (c contextConsumer) Uint16(name string, value uint16)   { c[name] = value }
func (c contextConsumer) Uint32(name string, value uint32)   { c[name] = value }
func (c contextConsumer) Uint64(name string, value uint64)   { c[name] = value }
func (c contextConsumer) Float32(name string, value float32) { c[name] = value }
func (c contextConsumer) Float64(name string, value float64) { c[name] = value }
func (c contextConsumer) String(name string, value string)   { c[name] = value }
func (c contextConsumer) Any(name string, value interface{}) { c[name] = value }

var _ errors.ErrorContextConsumer = contextConsumer{}
