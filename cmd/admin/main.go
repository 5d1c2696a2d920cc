// cmd/admin/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"github.com/teamdock/teamdock/internal/config"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
	"github.com/teamdock/teamdock/internal/service"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// defaultSettings are the limits a fresh install starts with. Values are
// adjustable afterwards through the super-admin environment endpoint.
var defaultSettings = map[string]string{
	service.SettingMaxStorage:            "10240",
	service.SettingMaxTeams:              "10",
	service.SettingMaxUsers:              "50",
	service.SettingMaxQuery:              "1000",
	service.SettingRecordingMonthlyLimit: "100",
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	root := &cobra.Command{
		Use:   "admin",
		Short: "TeamDock administrative tasks",
	}
	root.AddCommand(migrateCmd(), seedSettingsCmd(), seedTemplatesCmd(), reloadCacheCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			err = db.AutoMigrate(
				&model.User{},
				&model.UserMeta{},
				&model.Company{},
				&model.CompanyMeta{},
				&model.UserCompanyRole{},
				&model.Team{},
				&model.SharedTeam{},
				&model.Document{},
				&model.FileEmbedding{},
				&model.Summary{},
				&model.ChatHistory{},
				&model.ChatMessage{},
				&model.TokensUsed{},
				&model.Recording{},
				&model.Invitation{},
				&model.Subscription{},
				&model.AdminSetting{},
				&model.UsageStatistic{},
				&model.EmailTemplate{},
			)
			if err != nil {
				return fmt.Errorf("migrating schema: %w", err)
			}
			slog.Info("Schema migrated")
			return nil
		},
	}
}

func seedSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-settings",
		Short: "Insert default admin settings for missing keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			repo := repository.NewSettingsRepository(db)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			for name, value := range defaultSettings {
				if _, err := repo.Get(ctx, name); err == nil {
					continue
				}
				if err := repo.Set(ctx, name, value); err != nil {
					return err
				}
				slog.Info("Seeded setting", "name", name, "value", value)
			}
			return nil
		},
	}
}

// defaultTemplates give the mailer something editable to start from; until
// they exist the mailer uses its built-in copy.
var defaultTemplates = []model.EmailTemplate{
	{
		Name:     model.TemplateVerification,
		Subject:  "Verify your TeamDock account",
		Template: `<p>Hi {{name}},</p><p>Confirm your account by clicking <a href="{{url}}">this link</a>.</p>`,
	},
	{
		Name:     model.TemplateInvitation,
		Subject:  "You have been invited to join {{company}} on TeamDock",
		Template: `<p>You have been invited to join <b>{{company}}</b>.</p><p><a href="{{url}}">Accept the invitation</a>.</p>`,
	},
}

func seedTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-templates",
		Short: "Insert default email templates for missing names",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			repo := repository.NewEmailTemplateRepository(db)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			for _, template := range defaultTemplates {
				if _, err := repo.FindByName(ctx, template.Name); err == nil {
					continue
				}
				template := template
				if err := repo.Create(ctx, &template); err != nil {
					return err
				}
				slog.Info("Seeded email template", "name", template.Name)
			}
			return nil
		},
	}
}

func reloadCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload-cache",
		Short: "Repopulate the Redis settings cache from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cfg.Redis.CacheMode {
				return fmt.Errorf("cache mode is disabled")
			}
			db, err := openDatabase()
			if err != nil {
				return err
			}
			cache := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
			})
			defer cache.Close()

			settings := service.NewSettingsService(repository.NewSettingsRepository(db), cache, true)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return settings.Reload(ctx)
		},
	}
}

func openDatabase() (*gorm.DB, error) {
	cfg := config.Load()
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}
