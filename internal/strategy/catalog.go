package strategy

import "fmt"

// CatalogSize is the number of distinct valid configurations: 25 singles,
// 175 pairs and 375 triples over the three condition value sets.
const CatalogSize = 575

// Catalog enumerates every valid strategy variant in a fixed deterministic
// order: singles, then pairs, then triples, each in ascending value order.
func Catalog() []*Strategy {
	configs := make([]Config, 0, CatalogSize)

	for score := MinScoreThreshold; score <= MaxScoreThreshold; score++ {
		configs = append(configs, Config{ScoreThreshold: score})
	}
	for limit := MinHandLimit; limit <= MaxHandLimit; limit++ {
		configs = append(configs, Config{HandLimit: limit})
	}
	for high := MinHighCard; high <= MaxHighCard; high++ {
		configs = append(configs, Config{HighCardThreshold: high})
	}

	for score := MinScoreThreshold; score <= MaxScoreThreshold; score++ {
		for limit := MinHandLimit; limit <= MaxHandLimit; limit++ {
			configs = append(configs, Config{ScoreThreshold: score, HandLimit: limit})
		}
	}
	for score := MinScoreThreshold; score <= MaxScoreThreshold; score++ {
		for high := MinHighCard; high <= MaxHighCard; high++ {
			configs = append(configs, Config{ScoreThreshold: score, HighCardThreshold: high})
		}
	}
	for limit := MinHandLimit; limit <= MaxHandLimit; limit++ {
		for high := MinHighCard; high <= MaxHighCard; high++ {
			configs = append(configs, Config{HandLimit: limit, HighCardThreshold: high})
		}
	}

	for score := MinScoreThreshold; score <= MaxScoreThreshold; score++ {
		for limit := MinHandLimit; limit <= MaxHandLimit; limit++ {
			for high := MinHighCard; high <= MaxHighCard; high++ {
				configs = append(configs, Config{ScoreThreshold: score, HandLimit: limit, HighCardThreshold: high})
			}
		}
	}

	catalog := make([]*Strategy, len(configs))
	for i, cfg := range configs {
		s, err := New(cfg)
		if err != nil {
			panic(fmt.Sprintf("strategy: catalog enumeration produced invalid config %+v: %v", cfg, err))
		}
		catalog[i] = s
	}
	return catalog
}

// Lookup resolves a canonical catalog name to a strategy
func Lookup(name string) (*Strategy, error) {
	cfg, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}
