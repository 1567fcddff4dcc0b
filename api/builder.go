package api

import "github.com/aprimc/from-lambda/core"

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	decompiler *core.Decompiler
}

// WithDecompiler sets the decompiler used by the driver.
func (b DriverBuilder) WithDecompiler(d *core.Decompiler) DriverBuilder {
	b.decompiler = d
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	d := &driverImpl{
		name:       name,
		decompiler: b.decompiler,
	}

	if d.decompiler == nil {
		d.decompiler = core.NewBuilder().Build(name + ".Decompiler")
	}

	return d
}
