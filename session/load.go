package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"

	"github.com/rushteam/dinekit/config"
	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/dataset"
	"github.com/rushteam/dinekit/interaction"
)

// LoadRecords 按配置读取商户数据，并筛选出目标城市的餐厅。
func LoadRecords(cfg config.DatasetConfig) ([]*core.Restaurant, error) {
	var (
		all []*core.Restaurant
		err error
	)
	if cfg.Path != "" {
		all, err = loadFile(cfg.Path)
	} else {
		all, err = dataset.LoadArchive(cfg.Archive, cfg.Member)
	}
	if err != nil {
		return nil, err
	}
	if cfg.City == "" {
		return all, nil
	}
	return dataset.FilterCity(all, cfg.City), nil
}

func loadFile(path string) ([]*core.Restaurant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return dataset.LoadBusinesses(f)
}

// LoadCuisines 读取候选菜系清单，保留在 records 中出现次数足够多的菜系。
func LoadCuisines(cfg config.DatasetConfig, records []*core.Restaurant) ([]string, error) {
	f, err := os.Open(cfg.CuisinesFile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.CuisinesFile, err)
	}
	defer f.Close()

	candidates, err := dataset.LoadCandidates(f)
	if err != nil {
		return nil, err
	}
	return dataset.CuisineVocabulary(records, candidates, cfg.MinCuisineCount), nil
}

// LoadInteractions 从 store 读取演示用户；不存在时按配置生成并写回。
func LoadInteractions(
	ctx context.Context,
	cfg config.UsersConfig,
	s core.Store,
	records []*core.Restaurant,
	logger *zap.Logger,
) ([]core.Interaction, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	repo := interaction.NewRepository(s, cfg.Key)
	out, generated, err := repo.LoadOrGenerate(ctx, func() []core.Interaction {
		names, err := loadNames(cfg.NamesFile)
		if err != nil {
			logger.Warn("names unavailable, no demo users generated", zap.Error(err))
			return nil
		}
		rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
		return interaction.Generate(rng, names, records, interaction.DefaultCuisinePool, cfg.Count, cfg.MaxPerUser)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("interactions loaded", zap.Int("users", len(out)), zap.Bool("generated", generated))
	return out, nil
}

func loadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return interaction.LoadNames(f)
}
