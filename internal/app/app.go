package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/accountly/internal/pkg/authclient"
	"github.com/shandysiswandi/accountly/internal/pkg/clock"
	"github.com/shandysiswandi/accountly/internal/pkg/config"
	"github.com/shandysiswandi/accountly/internal/pkg/goroutine"
	"github.com/shandysiswandi/accountly/internal/pkg/hash"
	"github.com/shandysiswandi/accountly/internal/pkg/idempotency"
	"github.com/shandysiswandi/accountly/internal/pkg/instrument"
	"github.com/shandysiswandi/accountly/internal/pkg/messaging"
	"github.com/shandysiswandi/accountly/internal/pkg/router"
	"github.com/shandysiswandi/accountly/internal/pkg/uid"
	"github.com/shandysiswandi/accountly/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	eid       uid.NumberID
	uuid      uid.StringID
	verifier  authclient.Verifier

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	messaging messaging.Messaging
	casbin    *casbin.Enforcer

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initAuthClient()
	app.initDatabase()
	app.initCache()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
