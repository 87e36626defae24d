package cmd

import (
	"reflect"

	"github.com/JeffreyRichter/enum/enum"
	"github.com/spf13/pflag"
)

var EOutputFormat = OutputFormat(0)

type OutputFormat uint8

func (OutputFormat) Text() OutputFormat { return OutputFormat(0) }
func (OutputFormat) Json() OutputFormat { return OutputFormat(1) }

func (of OutputFormat) String() string {
	return enum.StringInt(of, reflect.TypeOf(of))
}

func (of *OutputFormat) Parse(s string) error {
	val, err := enum.Parse(reflect.TypeOf(of), s, true)
	if err == nil {
		*of = val.(OutputFormat)
	}
	return err
}

// outputFlag lets an OutputFormat be bound directly as a flag.
type outputFlag struct {
	format *OutputFormat
}

var _ pflag.Value = outputFlag{}

func (f outputFlag) String() string {
	if f.format == nil {
		return EOutputFormat.Text().String()
	}
	return f.format.String()
}

func (f outputFlag) Set(s string) error {
	return f.format.Parse(s)
}

func (f outputFlag) Type() string {
	return "format"
}
