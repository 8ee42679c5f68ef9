package cli

import (
	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/mrlokans/bookshelf/internal/console"
	"github.com/mrlokans/bookshelf/internal/vehicles"
)

// VehiclesCommand builds the demo fleet and starts every engine.
type VehiclesCommand struct {
	printer *console.Printer
	logger  zerolog.Logger
	orders  []vehicles.Order
}

func NewVehiclesCommand(printer *console.Printer, logger zerolog.Logger) *VehiclesCommand {
	return &VehiclesCommand{
		printer: printer,
		logger:  logger,
		orders:  vehicles.DemoOrders(),
	}
}

func (cmd *VehiclesCommand) Run() error {
	fleet, err := vehicles.Build(cmd.orders)
	if err != nil {
		return err
	}

	for _, v := range fleet {
		line := v.StartEngine()
		attr := color.FgBlue
		if _, ok := v.(vehicles.Motorcycle); ok {
			attr = color.FgYellow
		}
		cmd.printer.Line(attr, line)
		cmd.logger.Info().Msg(line)
	}
	return nil
}
