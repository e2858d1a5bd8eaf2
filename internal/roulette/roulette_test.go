package roulette

import (
	"fmt"
	"testing"

	"richcase_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Скриптованный источник: выдает значения по кругу
type scriptRNG struct {
	vals []float64
	i    int
}

func (s *scriptRNG) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// Счетчик вместо uuid, чтобы ленты можно было сравнивать целиком
type counterIDs struct{ n int }

func (c *counterIDs) NewID() string {
	c.n++
	return fmt.Sprintf("item-%d", c.n)
}

func testProbs() map[model.Rarity]float64 {
	return map[model.Rarity]float64{
		model.RarityConsumer:   0.40,
		model.RarityIndustrial: 0.30,
		model.RarityMilSpec:    0.18,
		model.RarityRestricted: 0.08,
		model.RarityClassified: 0.03,
		model.RarityCovert:     0.0064,
		model.RarityRare:       0.0036,
	}
}

func testCase() model.Case {
	return model.Case{
		ID:    "test",
		Name:  "Test Case",
		Price: 50,
		Items: []model.Item{
			{Name: "c1", Rarity: model.RarityConsumer, Price: 5},
			{Name: "c2", Rarity: model.RarityConsumer, Price: 7},
			{Name: "i1", Rarity: model.RarityIndustrial, Price: 12},
			{Name: "m1", Rarity: model.RarityMilSpec, Price: 30},
			{Name: "r1", Rarity: model.RarityRestricted, Price: 80},
			{Name: "cl1", Rarity: model.RarityClassified, Price: 200},
			{Name: "cv1", Rarity: model.RarityCovert, Price: 900},
			{Name: "g1", Rarity: model.RarityRare, Price: 5000},
		},
	}
}

func TestDrawSequence_Deterministic(t *testing.T) {
	cfg := Config{Probs: testProbs(), TrackLength: 65, WinnerIndex: 58}

	first := NewEngine(cfg, NewSeededRNG(42), &counterIDs{})
	second := NewEngine(cfg, NewSeededRNG(42), &counterIDs{})

	assert.Equal(t, first.Draw(testCase()), second.Draw(testCase()))
}

func TestDraw_TrackLengthAndWinnerIndex(t *testing.T) {
	cfg := Config{Probs: testProbs(), TrackLength: 10, WinnerIndex: 7}
	e := NewEngine(cfg, NewSeededRNG(1), &counterIDs{})

	track := e.Draw(testCase())

	require.Len(t, track, 10)
	assert.Equal(t, 7, e.WinnerIndex())
	assert.Equal(t, track[7], e.Winner(track))
}

func TestDrawSequence_UniqueInstanceIDs(t *testing.T) {
	cfg := Config{Probs: testProbs(), TrackLength: 65, WinnerIndex: 58}
	e := NewEngine(cfg, NewSeededRNG(7), nil)

	track := e.Draw(testCase())

	seen := make(map[string]struct{}, len(track))
	for _, it := range track {
		require.NotEmpty(t, it.InstanceID)
		_, dup := seen[it.InstanceID]
		require.False(t, dup, "duplicate instance id %s", it.InstanceID)
		seen[it.InstanceID] = struct{}{}
	}
}

func TestWinner_TrackShorterThanWinnerIndex(t *testing.T) {
	cfg := Config{Probs: testProbs(), TrackLength: 65, WinnerIndex: 58}
	e := NewEngine(cfg, NewSeededRNG(3), &counterIDs{})

	track := e.DrawSequence(testCase(), 5)

	require.Len(t, track, 5)
	assert.Equal(t, track[4], e.Winner(track))
}

func TestPickRarity_Distribution(t *testing.T) {
	const n = 200000

	probs := testProbs()
	e := NewEngine(Config{Probs: probs, TrackLength: 65, WinnerIndex: 58}, NewSeededRNG(123), &counterIDs{})

	counts := make(map[model.Rarity]int)
	for i := 0; i < n; i++ {
		counts[e.pickRarity()]++
	}

	for rarity, prob := range probs {
		got := float64(counts[rarity]) / n
		assert.InDelta(t, prob, got, 0.01, "rarity %s", rarity)
	}
}

func TestPickRarity_ShortfallFallsToLastRarity(t *testing.T) {
	// Сумма вероятностей меньше выпавшего значения: берется последняя редкость
	probs := map[model.Rarity]float64{model.RarityConsumer: 0.5}
	rng := &scriptRNG{vals: []float64{0.9}}
	e := NewEngine(Config{Probs: probs, TrackLength: 1, WinnerIndex: 0}, rng, &counterIDs{})

	assert.Equal(t, model.RarityRare, e.pickRarity())
}

func TestPickItem_FallbackToConsumerPool(t *testing.T) {
	// Редкость выпала, а предметов такой редкости в кейсе нет
	c := model.Case{
		ID: "narrow",
		Items: []model.Item{
			{Name: "c1", Rarity: model.RarityConsumer, Price: 5},
			{Name: "cv1", Rarity: model.RarityCovert, Price: 900},
		},
	}

	// Первое значение выбирает mil-spec, второе — предмет из пула
	probs := map[model.Rarity]float64{model.RarityMilSpec: 1.0}
	rng := &scriptRNG{vals: []float64{0.5, 0.0}}
	e := NewEngine(Config{Probs: probs, TrackLength: 1, WinnerIndex: 0}, rng, &counterIDs{})

	track := e.DrawSequence(c, 1)

	require.Len(t, track, 1)
	assert.Equal(t, model.RarityConsumer, track[0].Rarity)
	assert.Equal(t, "c1", track[0].Name)
}

func TestNewEngine_DefaultsWhenNil(t *testing.T) {
	cfg := Config{Probs: testProbs(), TrackLength: 5, WinnerIndex: 2}
	e := NewEngine(cfg, nil, nil)

	track := e.Draw(testCase())

	require.Len(t, track, 5)
	for _, it := range track {
		assert.NotEmpty(t, it.InstanceID)
		assert.NotEmpty(t, it.Name)
	}
}
