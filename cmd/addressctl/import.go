package main

import (
	"context"
	"fmt"
	"io"

	"addressbook/config"
	logs "addressbook/internal/infra/log"
	"addressbook/internal/infra/loader"
	"addressbook/internal/infra/persistence/postgres"
	"addressbook/internal/usecase"
	"addressbook/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// runImport replaces ownerID's stored address book with the rows of file.
func runImport(ctx context.Context, w io.Writer, file string, ownerID uuid.UUID) error {
	addresses, err := loader.NewCSVLoader(file).Load(ownerID)
	if err != nil {
		return err
	}

	inputs := make([]usecase.AddressInput, 0, len(addresses))
	for _, address := range addresses {
		inputs = append(inputs, usecase.AddressInput{
			Street:       address.Street,
			Number:       address.Number,
			Neighborhood: address.Neighborhood,
		})
	}

	var (
		cfg       *config.Config
		addressUC usecase.AddressSearchUsecase
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewAddressRepository,
			postgres.NewTransactionManager,
			impl.NewAddressSearchService,
		),
		fx.Populate(&cfg, &addressUC),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build import dependencies")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to connect to the database")
	}
	defer func() {
		_ = app.Stop(context.WithoutCancel(ctx))
	}()

	replaced, err := addressUC.ReplaceAddresses(ctx, ownerID, inputs)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Imported %d addresses for owner %s\n", len(replaced), ownerID)
	fmt.Fprint(w, refreshHint(cfg.Search))

	return nil
}

// refreshHint tells the operator when running servers will serve the imported book.
func refreshHint(searchCfg *config.SearchConfig) string {
	const refresh = "POST /api/v1/addresses/refresh as the owner to serve it now"

	if searchCfg == nil || searchCfg.CacheTTL < 0 {
		return fmt.Sprintf("Running servers keep the previous book until it is evicted; %s\n", refresh)
	}

	ttl := searchCfg.CacheTTL
	if ttl == 0 {
		ttl = config.DefaultSearchCacheTTL
	}

	return fmt.Sprintf("Running servers serve the new book within %s; %s\n", ttl, refresh)
}
