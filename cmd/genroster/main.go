// Command genroster emits a random rated-player roster as CSV or JSON,
// for exercising the balancing service.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	rostercsv "github.com/matchday/teamdraft/internal/adapters/csv"
	"github.com/matchday/teamdraft/internal/domain/model"
)

var firstNames = []string{
	"Alex", "Bruna", "Casey", "Dani", "Elif", "Femi", "Gabi", "Hana",
	"Ivo", "Jules", "Kai", "Lena", "Mika", "Noor", "Omar", "Pau",
	"Quinn", "Rui", "Sami", "Tess",
}

var lastNames = []string{
	"Adler", "Bakker", "Costa", "Duarte", "Egede", "Fuchs", "Gomes",
	"Haddad", "Ito", "Jansen", "Kaur", "Lima", "Mensah", "Novak",
	"Okafor", "Pires", "Quist", "Rossi", "Sato", "Tanaka",
}

func main() {
	count := flag.Int("count", 20, "number of players to generate")
	format := flag.String("format", "csv", "output format: csv or json")
	seed := flag.Int64("seed", 0, "random seed; 0 uses the current time")
	flag.Parse()

	if *count < 1 {
		fmt.Fprintln(os.Stderr, "count must be positive")
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // test data generation

	players := make([]*model.Player, *count)
	for i := range players {
		players[i] = &model.Player{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]),
			Speed:     rng.Intn(3) + 1,
			Technical: rng.Intn(3) + 1,
			Stamina:   rng.Intn(3) + 1,
		}
	}

	switch *format {
	case "csv":
		if err := rostercsv.WriteRoster(os.Stdout, players); err != nil {
			fmt.Fprintln(os.Stderr, "write roster:", err)
			os.Exit(1)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(players); err != nil {
			fmt.Fprintln(os.Stderr, "encode roster:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(1)
	}
}
