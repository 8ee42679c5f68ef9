// Package vehicles is a small creational demo: region-specific factories
// building cars and motorcycles. It shares nothing with the catalog.
package vehicles

import (
	"errors"
	"fmt"
	"strings"
)

type Region string

const (
	RegionUS Region = "US"
	RegionEU Region = "EU"
)

var ErrUnknownRegion = errors.New("unknown region")

type Vehicle interface {
	// StartEngine returns the start-up line for the vehicle.
	StartEngine() string
}

type Car struct {
	Make   string
	Model  string
	Region Region
}

func (c Car) StartEngine() string {
	return fmt.Sprintf("%s %s (%s Spec): Engine started", c.Make, c.Model, c.Region)
}

type Motorcycle struct {
	Make   string
	Model  string
	Region Region
}

func (m Motorcycle) StartEngine() string {
	return fmt.Sprintf("%s %s (%s Spec): Motor started", m.Make, m.Model, m.Region)
}

// Factory builds vehicles for a single region.
type Factory interface {
	CreateCar(brand, model string) Vehicle
	CreateMotorcycle(brand, model string) Vehicle
}

type USFactory struct{}

func (USFactory) CreateCar(brand, model string) Vehicle {
	return Car{Make: brand, Model: model, Region: RegionUS}
}

func (USFactory) CreateMotorcycle(brand, model string) Vehicle {
	return Motorcycle{Make: brand, Model: model, Region: RegionUS}
}

type EUFactory struct{}

func (EUFactory) CreateCar(brand, model string) Vehicle {
	return Car{Make: brand, Model: model, Region: RegionEU}
}

func (EUFactory) CreateMotorcycle(brand, model string) Vehicle {
	return Motorcycle{Make: brand, Model: model, Region: RegionEU}
}

// ForRegion returns the factory for region. The lookup ignores case.
func ForRegion(region string) (Factory, error) {
	switch Region(strings.ToUpper(strings.TrimSpace(region))) {
	case RegionUS:
		return USFactory{}, nil
	case RegionEU:
		return EUFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
}

// Order is one vehicle to build in a demo run.
type Order struct {
	Region     Region
	Motorcycle bool
	Make       string
	Model      string
}

// DemoOrders is the fleet built by the vehicles command.
func DemoOrders() []Order {
	return []Order{
		{Region: RegionUS, Make: "Chevrolet", Model: "Impala 1967"},
		{Region: RegionUS, Motorcycle: true, Make: "Indian", Model: "Challenger"},
		{Region: RegionEU, Make: "Volkswagen", Model: "Touareg"},
		{Region: RegionEU, Motorcycle: true, Make: "BMW", Model: "R 1250 RT"},
	}
}

// Build produces the vehicles for orders using the matching factories.
func Build(orders []Order) ([]Vehicle, error) {
	built := make([]Vehicle, 0, len(orders))
	for _, order := range orders {
		factory, err := ForRegion(string(order.Region))
		if err != nil {
			return nil, err
		}
		if order.Motorcycle {
			built = append(built, factory.CreateMotorcycle(order.Make, order.Model))
		} else {
			built = append(built, factory.CreateCar(order.Make, order.Model))
		}
	}
	return built, nil
}
