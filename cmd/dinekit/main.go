// Command dinekit 加载餐厅数据与演示用户，执行一次推荐，并把地图标记写为 GeoJSON。
//
// 用法：
//
//	dinekit -config dinekit.yaml
//	dinekit -config dinekit.yaml -user alice -friend bob -area Downtown
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rushteam/dinekit/config"
	"github.com/rushteam/dinekit/geo"
	"github.com/rushteam/dinekit/render"
	"github.com/rushteam/dinekit/session"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML 配置文件路径（为空时使用默认配置）")
		user       = flag.String("user", "", "覆盖 query.user")
		friend     = flag.String("friend", "", "覆盖 query.friend")
		area       = flag.String("area", "", "覆盖 query.area")
		out        = flag.String("out", "", "覆盖 output.geojson")
	)
	flag.Parse()

	cfg := config.DefaultAppConfig()
	if *configPath != "" {
		loaded, err := config.LoadAppConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	override(&cfg.Query.User, *user)
	override(&cfg.Query.Friend, *friend)
	override(&cfg.Query.Area, *area)
	override(&cfg.Output.GeoJSON, *out)

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("dinekit failed", zap.Error(err))
		os.Exit(1)
	}
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func run(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) error {
	records, err := session.LoadRecords(cfg.Dataset)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	cuisines, err := session.LoadCuisines(cfg.Dataset, records)
	if err != nil {
		return fmt.Errorf("load cuisines: %w", err)
	}

	st, err := config.OpenStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	interactions, err := session.LoadInteractions(ctx, cfg.Users, st, records, logger)
	if err != nil {
		return fmt.Errorf("load interactions: %w", err)
	}

	s, err := session.New(records, cuisines, interactions, logger,
		session.WithPipeline(&cfg.Config),
		session.WithStore(st))
	if err != nil {
		return err
	}

	if cfg.Query.Area == "" {
		logger.Info("no area given, nearby recall skipped", zap.Strings("areas", geo.AreaNames()))
	}
	res, err := s.Recommend(ctx, session.Query{
		User:       cfg.Query.User,
		Friend:     cfg.Query.Friend,
		Area:       cfg.Query.Area,
		Preference: cfg.Query.Preference,
	})
	if err != nil {
		return err
	}

	if err := render.WriteGeoJSONFile(ctx, cfg.Output.GeoJSON, res.Markers); err != nil {
		return err
	}
	logger.Info("markers written",
		zap.String("request_id", res.RequestID),
		zap.String("path", cfg.Output.GeoJSON),
		zap.Int("markers", len(res.Markers)))
	return nil
}
