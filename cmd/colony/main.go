package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Cemonix/ColonyProtocol/internal/commands"
	"github.com/Cemonix/ColonyProtocol/internal/config"
	"github.com/Cemonix/ColonyProtocol/internal/game"
	"github.com/Cemonix/ColonyProtocol/internal/models"
	"github.com/Cemonix/ColonyProtocol/internal/starmap"
)

const maxPlayers = 4

var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("51")).
	Bold(true).
	Padding(0, 2)

var promptStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("226")).
	Bold(true)

func main() {
	var (
		dataDir string
		players int
		mapSize string
		seed    int64
		quiet   bool
	)

	rootCmd := &cobra.Command{
		Use:   "colony",
		Short: "Colony Protocol, a turn-based space colonization game",
		Long:  "Colony Protocol: build colonies, raise fleets and conquer every planet in the galaxy.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(dataDir, players, mapSize, seed, quiet)
		},
	}
	rootCmd.Flags().StringVar(&dataDir, "data", "", "Directory with ships.yaml, structures.yaml and names.yaml (built-in tables when empty)")
	rootCmd.Flags().IntVar(&players, "players", 0, "Number of commanders, 1-4 (prompted when 0)")
	rootCmd.Flags().StringVar(&mapSize, "map", "", "Galaxy size: small, medium or large (prompted when empty)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Galaxy generation seed (random when 0)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Skip the banner and setup announcements")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(dataDir string, players int, mapSize string, seed int64, quiet bool) error {
	cfg, err := config.Load(dataDir)
	if err != nil {
		color.Red("Error loading definitions: %v", err)
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	reader := bufio.NewReader(os.Stdin)

	if !quiet {
		fmt.Println(bannerStyle.Render("COLONY PROTOCOL"))
		fmt.Println()
	}

	if players < 1 || players > maxPlayers {
		players = promptPlayerCount(reader)
	}
	names, err := promptCommanderNames(reader, cfg, players, rng)
	if err != nil {
		color.Red("Error: %v", err)
		return err
	}
	if mapSize == "" {
		mapSize = promptMapSize(reader)
	}
	numPlanets, err := starmap.MapSize(mapSize).PlanetCount()
	if err != nil {
		color.Red("Error: %v", err)
		return err
	}

	galaxy, err := starmap.Generate(numPlanets, starmap.NewNameGenerator(cfg.NameParts, rng), rng)
	if err != nil {
		color.Red("Error generating galaxy: %v", err)
		return err
	}

	state, err := setupGame(names, galaxy, cfg, rng, quiet)
	if err != nil {
		color.Red("Error setting up game: %v", err)
		return err
	}

	if !quiet {
		color.Green("The galaxy holds %d planets. First to own them all wins.", numPlanets)
		fmt.Println("Type 'help' for commands, 'exit' to leave.")
		fmt.Println()
	}

	return readLoop(reader, state, galaxy)
}

func promptPlayerCount(reader *bufio.Reader) int {
	for {
		fmt.Printf("Number of commanders (1-%d): ", maxPlayers)
		line, _ := reader.ReadString('\n')
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= maxPlayers {
			return n
		}
		color.Yellow("Enter a number between 1 and %d", maxPlayers)
	}
}

func promptCommanderNames(reader *bufio.Reader, cfg *config.Config, n int, rng *rand.Rand) ([]string, error) {
	fmt.Print("Name your commanders manually? [y/N]: ")
	line, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(line)) != "y" {
		return config.RandomCommanderNames(cfg.CommanderNames, n, rng)
	}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		for {
			fmt.Printf("Commander %d name: ", i+1)
			line, _ := reader.ReadString('\n')
			name := strings.TrimSpace(line)
			if name != "" {
				names = append(names, name)
				break
			}
		}
	}
	return names, nil
}

func promptMapSize(reader *bufio.Reader) string {
	for {
		fmt.Print("Galaxy size [small/medium/large]: ")
		line, _ := reader.ReadString('\n')
		size := strings.ToLower(strings.TrimSpace(line))
		if _, err := starmap.MapSize(size).PlanetCount(); err == nil {
			return size
		}
		color.Yellow("Choose small, medium or large")
	}
}

// setupGame creates the players, assigns each a distinct random home planet and
// installs its capital with full starting resources.
func setupGame(names []string, galaxy *starmap.Map, cfg *config.Config, rng *rand.Rand, quiet bool) (*game.GameState, error) {
	players := make([]*models.Player, 0, len(names))
	for _, name := range names {
		id := models.PlayerID(models.NameToID(name))
		players = append(players, models.NewPlayer(id, name))
	}

	planets := make([]*models.Planet, 0, len(galaxy.Planets))
	for _, p := range galaxy.Planets {
		planets = append(planets, p)
	}
	state := game.NewGameState(players, planets, cfg.Structures, cfg.Ships)

	homes := state.SortedPlanets()
	rng.Shuffle(len(homes), func(i, j int) { homes[i], homes[j] = homes[j], homes[i] })
	if len(homes) < len(players) {
		return nil, fmt.Errorf("not enough planets for %d players", len(players))
	}
	for i, player := range players {
		home := homes[i]
		if err := home.Colonize(cfg.Structures); err != nil {
			return nil, fmt.Errorf("settling %s: %w", home.Name, err)
		}
		home.Owner = player.ID
		player.AddPlanet(home.ID)
		if !quiet {
			color.Cyan("%s establishes a colony on %s", player.Name, home.Name)
		}
	}
	return state, nil
}

func readLoop(reader *bufio.Reader, state *game.GameState, galaxy *starmap.Map) error {
	for {
		fmt.Print(promptStyle.Render(fmt.Sprintf("[turn %d] %s>", state.Turn, state.PlayerName(state.CurrentPlayer()))) + " ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return nil
		}
		input := strings.TrimSpace(line)
		switch strings.ToLower(input) {
		case "":
			continue
		case "exit", "terminate", "quit":
			fmt.Println("Session ended.")
			return nil
		}

		cmd, err := commands.Parse(input)
		if err != nil {
			color.Red("%v", err)
			continue
		}
		lines, err := commands.Execute(cmd, state, galaxy)
		if err != nil {
			color.Red("%v", err)
			continue
		}
		for _, l := range lines {
			fmt.Println(l)
		}
		if state.Over() {
			color.Green("Game over. %s rules the galaxy after %d turns.", state.PlayerName(state.Winner), state.Turn)
			return nil
		}
	}
}
