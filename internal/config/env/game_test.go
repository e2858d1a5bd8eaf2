package env

import (
	"os"
	"path/filepath"
	"testing"

	"richcase_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validGameYAML = `
roulette:
  track_length: 65
  winner_index: 58
rarity_probs:
  consumer: 0.40
  industrial: 0.30
  mil-spec: 0.18
  restricted: 0.08
  classified: 0.03
  covert: 0.0064
  rare: 0.0036
start_balance: 1000
deposit_packages: [100, 500, 1000, 5000]
cases:
  - id: gamma
    name: Gamma Case
    price: 50
    image: gamma.png
    items:
      - name: c1
        rarity: consumer
        price: 5
        image: c1.png
      - name: cv1
        rarity: covert
        price: 900
        image: cv1.png
`

func writeGameYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewGameConfigFromYAML(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(writeGameYAML(t, validGameYAML))
	require.NoError(t, err)

	assert.Equal(t, 65, cfg.TrackLength())
	assert.Equal(t, 58, cfg.WinnerIndex())
	assert.Equal(t, int64(1000), cfg.StartBalance())
	assert.Equal(t, []int64{100, 500, 1000, 5000}, cfg.DepositPackages())

	require.Len(t, cfg.Cases(), 1)
	c, ok := cfg.CaseByID("gamma")
	require.True(t, ok)
	assert.Equal(t, "Gamma Case", c.Name)
	assert.Equal(t, int64(50), c.Price)
	require.Len(t, c.Items, 2)
	assert.Equal(t, model.RarityConsumer, c.Items[0].Rarity)

	probs := cfg.RarityProbs()
	assert.InDelta(t, 0.0036, probs[model.RarityRare], 1e-12)

	_, ok = cfg.CaseByID("no-such-case")
	assert.False(t, ok)
}

func TestNewGameConfigFromYAML_MissingFile(t *testing.T) {
	_, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestNewGameConfigFromYAML_BadProbSum(t *testing.T) {
	yaml := `
roulette:
  track_length: 65
  winner_index: 58
rarity_probs:
  consumer: 0.5
  covert: 0.4
start_balance: 1000
cases:
  - id: gamma
    name: Gamma Case
    price: 50
    items:
      - name: c1
        rarity: consumer
        price: 5
`
	_, err := NewGameConfigFromYAML(writeGameYAML(t, yaml))
	require.ErrorContains(t, err, "probabilities sum")
}

func TestNewGameConfigFromYAML_UnknownRarity(t *testing.T) {
	yaml := `
roulette:
  track_length: 65
  winner_index: 58
rarity_probs:
  legendary: 1.0
start_balance: 1000
cases:
  - id: gamma
    name: Gamma Case
    price: 50
    items:
      - name: c1
        rarity: consumer
        price: 5
`
	_, err := NewGameConfigFromYAML(writeGameYAML(t, yaml))
	require.ErrorContains(t, err, "unknown rarity")
}

func TestNewGameConfigFromYAML_WinnerIndexOutOfTrack(t *testing.T) {
	yaml := `
roulette:
  track_length: 10
  winner_index: 10
rarity_probs:
  consumer: 1.0
start_balance: 1000
cases:
  - id: gamma
    name: Gamma Case
    price: 50
    items:
      - name: c1
        rarity: consumer
        price: 5
`
	_, err := NewGameConfigFromYAML(writeGameYAML(t, yaml))
	require.ErrorContains(t, err, "winner_index")
}

func TestNewGameConfigFromYAML_NoConsumerFallback(t *testing.T) {
	yaml := `
roulette:
  track_length: 65
  winner_index: 58
rarity_probs:
  consumer: 1.0
start_balance: 1000
cases:
  - id: gamma
    name: Gamma Case
    price: 50
    items:
      - name: cv1
        rarity: covert
        price: 900
`
	_, err := NewGameConfigFromYAML(writeGameYAML(t, yaml))
	require.ErrorContains(t, err, "no consumer items")
}

func TestNewGameConfigFromYAML_BadDepositPackage(t *testing.T) {
	yaml := `
roulette:
  track_length: 65
  winner_index: 58
rarity_probs:
  consumer: 1.0
start_balance: 1000
deposit_packages: [100, 0]
cases:
  - id: gamma
    name: Gamma Case
    price: 50
    items:
      - name: c1
        rarity: consumer
        price: 5
`
	_, err := NewGameConfigFromYAML(writeGameYAML(t, yaml))
	require.ErrorContains(t, err, "deposit_packages")
}

func TestNewGameConfigFromYAML_DuplicateCaseID(t *testing.T) {
	yaml := `
roulette:
  track_length: 65
  winner_index: 58
rarity_probs:
  consumer: 1.0
start_balance: 1000
cases:
  - id: gamma
    name: Gamma Case
    price: 50
    items:
      - name: c1
        rarity: consumer
        price: 5
  - id: gamma
    name: Gamma Copy
    price: 50
    items:
      - name: c1
        rarity: consumer
        price: 5
`
	_, err := NewGameConfigFromYAML(writeGameYAML(t, yaml))
	require.ErrorContains(t, err, "duplicate case id")
}
