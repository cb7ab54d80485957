package bot

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreateBots seats amount bots with distinct random names, all playing the
// named strategy.
func CreateBots(amount int, strategyName string, rng *rand.Rand) ([]*Bot, error) {
	if amount < consts.MinPlayers {
		return nil, consts.ErrorsNotEnoughPlayers
	}
	if amount > consts.MaxPlayers {
		return nil, consts.ErrorsTooManyPlayers
	}

	names := make([]string, len(botNames))
	copy(names, botNames)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })

	bots := make([]*Bot, 0, amount)
	for _, botName := range names[:amount] {
		strategy, err := StrategyByName(strategyName, rng)
		if err != nil {
			return nil, fmt.Errorf("create bot %s: %w", botName, err)
		}
		bots = append(bots, New(botName, strategy))
	}
	return bots, nil
}
