package log

import "context"

type stub struct{}

func NewStub() Logger {
	return stub{}
}

func (s stub) With(Fields) Logger {
	return s
}

func (s stub) WithField(string, any) Logger {
	return s
}

func (s stub) WithError(error) Logger {
	return s
}

func (s stub) Log(context.Context, Level, string) {}

func (s stub) Debug(context.Context, string) {}

func (s stub) Info(context.Context, string) {}

func (s stub) Warn(context.Context, string) {}

func (s stub) Error(context.Context, string) {}
