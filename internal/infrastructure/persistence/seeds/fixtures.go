// Package seeds holds the fixture dataset loaded by the seed operation.
package seeds

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ticketdesk/internal/application/ticket/dto"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type fixtureFile struct {
	Tickets []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Status      string `yaml:"status"`
		Priority    int    `yaml:"priority"`
	} `yaml:"tickets"`
	Customers       []contactFixture `yaml:"customers"`
	Agents          []contactFixture `yaml:"agents"`
	TicketCustomers []struct {
		Ticket   int `yaml:"ticket"`
		Customer int `yaml:"customer"`
	} `yaml:"ticket_customers"`
	TicketAgents []struct {
		Ticket int `yaml:"ticket"`
		Agent  int `yaml:"agent"`
	} `yaml:"ticket_agents"`
}

type contactFixture struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// YAMLFixtures decodes a seed dataset from YAML.
type YAMLFixtures struct {
	raw []byte
}

// NewDefaultFixtures returns the dataset embedded in the binary.
func NewDefaultFixtures() *YAMLFixtures {
	return &YAMLFixtures{raw: defaultFixtures}
}

func NewYAMLFixtures(raw []byte) *YAMLFixtures {
	return &YAMLFixtures{raw: raw}
}

// LoadYAMLFixturesFile reads a dataset from path. The file is parsed on Load.
func LoadYAMLFixturesFile(path string) (*YAMLFixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed fixtures %s: %w", path, err)
	}
	return NewYAMLFixtures(raw), nil
}

func (f *YAMLFixtures) Load() (*dto.SeedDataset, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(f.raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixtures: %w", err)
	}

	ds := &dto.SeedDataset{}
	for _, t := range file.Tickets {
		ds.Tickets = append(ds.Tickets, dto.SeedTicket{
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			Priority:    t.Priority,
		})
	}
	for _, c := range file.Customers {
		ds.Customers = append(ds.Customers, dto.SeedContact{Name: c.Name, Email: c.Email})
	}
	for _, a := range file.Agents {
		ds.Agents = append(ds.Agents, dto.SeedContact{Name: a.Name, Email: a.Email})
	}
	for _, l := range file.TicketCustomers {
		ds.CustomerLinks = append(ds.CustomerLinks, dto.SeedLink{Ticket: l.Ticket, Target: l.Customer})
	}
	for _, l := range file.TicketAgents {
		ds.AgentLinks = append(ds.AgentLinks, dto.SeedLink{Ticket: l.Ticket, Target: l.Agent})
	}

	return ds, nil
}
