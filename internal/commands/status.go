package commands

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Cemonix/ColonyProtocol/internal/game"
	"github.com/Cemonix/ColonyProtocol/internal/models"
	"github.com/Cemonix/ColonyProtocol/internal/starmap"
)

func renderStatus(c StatusCommand, g *game.GameState) ([]string, error) {
	switch c.Target {
	case StatusTurn:
		return renderTurn(g)
	case StatusPlanets:
		return renderPlanets(g)
	case StatusPlanet:
		return renderPlanetDetail(c.Planet, g)
	case StatusPlayer:
		return renderPlayer(g)
	}
	return nil, &InvalidArgumentError{Command: "status", Argument: fmt.Sprint(c.Target), Reason: "unknown target"}
}

func renderTurn(g *game.GameState) ([]string, error) {
	player, err := g.Player(g.CurrentPlayer())
	if err != nil {
		return nil, err
	}
	lines := []string{fmt.Sprintf("Turn %d, %s to act", g.Turn, player.Name)}
	if len(player.PendingActions) == 0 {
		lines = append(lines, "No pending actions")
		return lines, nil
	}
	lines = append(lines, "Pending actions:")
	for _, a := range player.PendingActions {
		lines = append(lines, "  "+a.Describe())
	}
	return lines, nil
}

func renderPlanets(g *game.GameState) ([]string, error) {
	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeader([]string{"ID", "Name", "Owner", "Shield"}),
	)
	for _, p := range g.SortedPlanets() {
		shield := "-"
		if max := p.MaxShieldHP(); max > 0 {
			shield = fmt.Sprintf("%d/%d", p.ShieldHP, max)
		}
		table.Append([]string{string(p.ID), p.Name, g.PlayerName(p.Owner), shield})
	}
	table.Render()
	return tableLines(&buf), nil
}

func renderPlanetDetail(name string, g *game.GameState) ([]string, error) {
	planet, ok := g.FindPlanetByName(name)
	if !ok {
		return nil, &UnknownPlanetError{Name: name}
	}
	lines := []string{
		fmt.Sprintf("%s (%s), owner: %s", planet.Name, planet.ID, g.PlayerName(planet.Owner)),
		fmt.Sprintf("Resources: %s", planet.Available),
		fmt.Sprintf("Storage:   %s", planet.StorageCapacity),
		fmt.Sprintf("Production: %s per turn", planet.ProductionRate),
	}
	if max := planet.MaxShieldHP(); max > 0 {
		lines = append(lines, fmt.Sprintf("Shield: %d/%d HP", planet.ShieldHP, max))
	}

	if len(planet.Structures) > 0 {
		var buf bytes.Buffer
		table := tablewriter.NewTable(&buf,
			tablewriter.WithHeader([]string{"Structure", "Level", "State", "HP"}),
		)
		for _, id := range g.Structures.IDs() {
			s, ok := planet.Structures[id]
			if !ok {
				continue
			}
			state := s.State.String()
			if s.State == models.StructureUpgrading {
				state = fmt.Sprintf("upgrading to %d (%d turns)", s.TargetLevel, s.TurnsRemaining)
			}
			table.Append([]string{string(id), fmt.Sprint(s.Level), state, fmt.Sprint(s.HP)})
		}
		table.Render()
		lines = append(lines, tableLines(&buf)...)
	}

	if len(planet.Connections) > 0 {
		conns := make([]string, 0, len(planet.Connections))
		for _, c := range planet.Connections {
			conns = append(conns, fmt.Sprintf("%s (%d turns)", c.To, c.Distance))
		}
		lines = append(lines, "Connections: "+strings.Join(conns, ", "))
	}
	return lines, nil
}

func renderPlayer(g *game.GameState) ([]string, error) {
	player, err := g.Player(g.CurrentPlayer())
	if err != nil {
		return nil, err
	}
	lines := []string{
		fmt.Sprintf("%s: %d planets, %d ships, %d fleets",
			player.Name, len(player.Planets), len(player.Ships), len(player.Fleets)),
	}
	for _, planetID := range player.Planets {
		planet, err := g.Planet(planetID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", planet.Name, planet.Available))
	}
	for _, a := range player.PendingActions {
		lines = append(lines, "  "+a.Describe())
	}
	return lines, nil
}

func renderShips(g *game.GameState) ([]string, error) {
	player, err := g.Player(g.CurrentPlayer())
	if err != nil {
		return nil, err
	}
	ships := player.AllShips()
	if len(ships) == 0 {
		return []string{"No ships"}, nil
	}
	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeader([]string{"ID", "Type", "Location", "Fleet"}),
	)
	for _, s := range ships {
		fleet := "-"
		if s.InFleet() {
			fleet = string(s.Fleet)
		}
		table.Append([]string{string(s.ID), string(s.Type), string(s.Location), fleet})
	}
	table.Render()
	return tableLines(&buf), nil
}

func renderFleets(g *game.GameState) ([]string, error) {
	player, err := g.Player(g.CurrentPlayer())
	if err != nil {
		return nil, err
	}
	fleets := player.AllFleets()
	if len(fleets) == 0 {
		return []string{"No fleets"}, nil
	}
	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeader([]string{"ID", "Name", "Location", "Ships", "Activity"}),
	)
	for _, f := range fleets {
		activity := "idle"
		if a := player.FleetAction(f.ID); a != nil {
			activity = a.Describe()
		}
		table.Append([]string{
			string(f.ID), f.Name, string(f.Location),
			fmt.Sprint(len(f.Ships)), activity,
		})
	}
	table.Render()
	return tableLines(&buf), nil
}

func renderMap(g *game.GameState, galaxy *starmap.Map) ([]string, error) {
	names := make(map[models.PlayerID]string, len(g.Players))
	for id, p := range g.Players {
		names[id] = p.Name
	}
	return strings.Split(strings.TrimRight(galaxy.Render(names), "\n"), "\n"), nil
}

func tableLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}
