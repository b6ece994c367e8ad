package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fekuna/omnipos-storefront/config"
	"github.com/fekuna/omnipos-storefront/internal/admin"
	adminDTO "github.com/fekuna/omnipos-storefront/internal/admin/dto"
	adminUCPkg "github.com/fekuna/omnipos-storefront/internal/admin/usecase"
	cartUCPkg "github.com/fekuna/omnipos-storefront/internal/cart/usecase"
	catRepoPkg "github.com/fekuna/omnipos-storefront/internal/catalog/repository"
	catUCPkg "github.com/fekuna/omnipos-storefront/internal/catalog/usecase"
	"github.com/fekuna/omnipos-storefront/internal/export"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/view"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	app := &cli.App{
		Name:  "storefront",
		Usage: "manage and browse the storefront product catalog",
		Commands: []*cli.Command{
			listCommand(cfg, logger),
			featuredCommand(cfg, logger),
			addCommand(cfg, logger),
			updateCommand(cfg, logger),
			deleteCommand(cfg, logger),
			exportCommand(cfg, logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Encoding = cfg.Logger.Encoding
	zapCfg.DisableCaller = cfg.Logger.DisableCaller
	zapCfg.DisableStacktrace = cfg.Logger.DisableStacktrace

	if cfg.App.Env == "development" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
	}

	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

func newRepository(cfg *config.Config, logger *zap.Logger) (*catRepoPkg.FileRepository, error) {
	return catRepoPkg.NewFileRepository(cfg.Catalog.DataFile, cfg.Catalog.BackupsDir, logger)
}

func newViewBuilder(cfg *config.Config, logger *zap.Logger) (*view.Builder, error) {
	repo, err := newRepository(cfg, logger)
	if err != nil {
		return nil, err
	}
	products, err := repo.Load()
	if err != nil {
		return nil, err
	}

	catalogUC := catUCPkg.NewCatalogUseCase(products, cfg.Catalog, logger)
	cartUC := cartUCPkg.NewCartUseCase(catalogUC, cfg.Cart, logger)
	return view.NewBuilder(catalogUC, cartUC), nil
}

func listCommand(cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "browse the catalog with search, filter, sort and paging",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Usage: "case-insensitive name/category search"},
			&cli.StringFlag{Name: "category", Usage: "exact category filter"},
			&cli.StringFlag{Name: "sort", Value: "id-asc", Usage: "id-asc, price-asc, price-desc or name-asc"},
			&cli.IntFlag{Name: "page", Value: 1},
		},
		Action: func(c *cli.Context) error {
			repo, err := newRepository(cfg, logger)
			if err != nil {
				return err
			}
			products, err := repo.Load()
			if err != nil {
				return err
			}

			catalogUC := catUCPkg.NewCatalogUseCase(products, cfg.Catalog, logger)
			cartUC := cartUCPkg.NewCartUseCase(catalogUC, cfg.Cart, logger)
			builder := view.NewBuilder(catalogUC, cartUC)

			catalogUC.SetSearch(c.String("search"))
			catalogUC.SetCategory(c.String("category"))
			catalogUC.SetSort(model.ParseSortKey(c.String("sort")))
			catalogUC.SetPage(c.Int("page"))

			page := builder.CatalogPage()
			if page.Empty {
				fmt.Println("no products found")
				return nil
			}

			for _, card := range page.Products {
				badge := ""
				if card.Badge != "" {
					badge = " [" + card.Badge + "]"
				}
				fmt.Printf("%4d  %-32s %-18s %10s  %s%s\n",
					card.ID, card.Name, card.Category, card.Price, card.Stars, badge)
			}
			fmt.Printf("page %d/%d, %d product(s)\n", page.Page, page.PageCount, page.TotalItems)
			return nil
		},
	}
}

func featuredCommand(cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "featured",
		Usage: "show the featured (badged) products",
		Action: func(c *cli.Context) error {
			builder, err := newViewBuilder(cfg, logger)
			if err != nil {
				return err
			}
			for _, card := range builder.Featured() {
				fmt.Printf("%4d  %-32s %10s  [%s]\n", card.ID, card.Name, card.Price, card.Badge)
			}
			return nil
		},
	}
}

func productFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Required: required},
		&cli.StringFlag{Name: "price", Required: required, Usage: "decimal price, e.g. 24.90"},
		&cli.StringFlag{Name: "category"},
		&cli.IntFlag{Name: "rating", Value: model.DefaultRating},
		&cli.StringFlag{Name: "badge"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "image", Usage: "image path relative to the web root"},
		&cli.StringFlag{Name: "icon"},
	}
}

func addCommand(cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "add a product to the catalog",
		Flags: productFlags(true),
		Action: func(c *cli.Context) error {
			uc, err := newAdmin(cfg, logger)
			if err != nil {
				return err
			}
			input, err := createInput(c)
			if err != nil {
				return err
			}
			p, err := uc.Create(input)
			if err != nil {
				return err
			}
			fmt.Printf("product %q added with id %d\n", p.Name, p.ID)
			return nil
		},
	}
}

func updateCommand(cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "update an existing product",
		Flags: append([]cli.Flag{&cli.IntFlag{Name: "id", Required: true}}, productFlags(true)...),
		Action: func(c *cli.Context) error {
			uc, err := newAdmin(cfg, logger)
			if err != nil {
				return err
			}
			input, err := updateInput(c)
			if err != nil {
				return err
			}
			p, err := uc.Update(c.Int("id"), input)
			if err != nil {
				return err
			}
			fmt.Printf("product %d (%q) updated\n", p.ID, p.Name)
			return nil
		},
	}
}

func deleteCommand(cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "remove a product from the catalog",
		Flags: []cli.Flag{&cli.IntFlag{Name: "id", Required: true}},
		Action: func(c *cli.Context) error {
			uc, err := newAdmin(cfg, logger)
			if err != nil {
				return err
			}
			if err := uc.Delete(c.Int("id")); err != nil {
				return err
			}
			fmt.Printf("product %d deleted\n", c.Int("id"))
			return nil
		},
	}
}

func newAdmin(cfg *config.Config, logger *zap.Logger) (admin.UseCase, error) {
	repo, err := newRepository(cfg, logger)
	if err != nil {
		return nil, err
	}
	return adminUCPkg.NewAdminUseCase(repo, logger)
}

func parsePrice(c *cli.Context) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(c.String("price"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", c.String("price"), err)
	}
	return price, nil
}

func createInput(c *cli.Context) (*adminDTO.CreateProductInput, error) {
	price, err := parsePrice(c)
	if err != nil {
		return nil, err
	}
	return &adminDTO.CreateProductInput{
		Name:        c.String("name"),
		Price:       price,
		Category:    c.String("category"),
		Rating:      c.Int("rating"),
		Badge:       c.String("badge"),
		Description: c.String("description"),
		ImagePath:   c.String("image"),
		Icon:        c.String("icon"),
	}, nil
}

func updateInput(c *cli.Context) (*adminDTO.UpdateProductInput, error) {
	price, err := parsePrice(c)
	if err != nil {
		return nil, err
	}
	return &adminDTO.UpdateProductInput{
		Name:        c.String("name"),
		Price:       price,
		Category:    c.String("category"),
		Rating:      c.Int("rating"),
		Badge:       c.String("badge"),
		Description: c.String("description"),
		ImagePath:   c.String("image"),
		Icon:        c.String("icon"),
	}, nil
}

func exportCommand(cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "export the catalog for the web site or as a spreadsheet",
		Subcommands: []*cli.Command{
			{
				Name:  "js",
				Usage: "write the products.js bundle consumed by the static site",
				Action: func(c *cli.Context) error {
					repo, err := newRepository(cfg, logger)
					if err != nil {
						return err
					}
					products, err := repo.Load()
					if err != nil {
						return err
					}
					exporter, err := export.NewJSExporter(cfg.Export.JSFile, cfg.Export.JSBackupsDir, logger)
					if err != nil {
						return err
					}
					if err := exporter.Export(products); err != nil {
						return err
					}
					fmt.Printf("%s updated with %d product(s)\n", cfg.Export.JSFile, len(products))
					return nil
				},
			},
			{
				Name:  "xlsx",
				Usage: "write an xlsx workbook",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Value: "products.xlsx"},
				},
				Action: func(c *cli.Context) error {
					repo, err := newRepository(cfg, logger)
					if err != nil {
						return err
					}
					products, err := repo.Load()
					if err != nil {
						return err
					}
					exporter := export.NewXLSXExporter(cfg.Export.XLSXSheetName, logger)
					if err := exporter.Export(products, c.String("out")); err != nil {
						return err
					}
					fmt.Printf("%s written with %d product(s)\n", c.String("out"), len(products))
					return nil
				},
			},
		},
	}
}
