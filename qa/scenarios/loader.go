package scenarios

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/kitchen/core/model"
	"github.com/kilianp07/kitchen/core/pickup"
	"github.com/kilianp07/kitchen/core/storage"
)

type OrderDef struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Temp      string `yaml:"temp"`
	Freshness int    `yaml:"freshness"`
}

func (o OrderDef) ToModel() (model.Order, error) {
	temp, err := model.ParseTempClass(o.Temp)
	if err != nil {
		return model.Order{}, err
	}
	return model.Order{ID: o.ID, Name: o.Name, Temp: temp, Freshness: o.Freshness}, nil
}

type DwellDef struct {
	MinMS      int  `yaml:"min_ms"`
	MaxMS      int  `yaml:"max_ms"`
	Concurrent bool `yaml:"concurrent"`
}

func (d DwellDef) Bounds() pickup.Bounds {
	return pickup.Bounds{
		Min:        time.Duration(d.MinMS) * time.Millisecond,
		Max:        time.Duration(d.MaxMS) * time.Millisecond,
		Concurrent: d.Concurrent,
	}
}

type Expected struct {
	Place   map[string]int `yaml:"place"`
	Move    int            `yaml:"move"`
	Discard int            `yaml:"discard"`
	Pickup  int            `yaml:"pickup"`
}

type Scenario struct {
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description,omitempty"`
	Storage      storage.Config `yaml:"storage"`
	BatchSize    int            `yaml:"batch_size"`
	BatchDelayMS int            `yaml:"batch_delay_ms"`
	Dwell        DwellDef       `yaml:"dwell"`
	Orders       []OrderDef     `yaml:"orders"`
	Expected     Expected       `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
