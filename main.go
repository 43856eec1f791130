package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/amazeing/api"
	api_i "github.com/beka-birhanu/amazeing/api/i"
	mazeapi "github.com/beka-birhanu/amazeing/api/maze"
	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/encoder"
	"github.com/beka-birhanu/amazeing/infrastruture/cache"
	"github.com/beka-birhanu/amazeing/infrastruture/repo"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/beka-birhanu/amazeing/ui"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	envs           config.Config
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	mazeCache      i.MazeCache
	mazeService    *service.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func newLogger(name, color string) *log.Logger {
	return log.New(os.Stdout, fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset), log.LstdFlags)
}

func logError(format string, args ...any) {
	appLogger.Printf(config.LogErrorColor+"[ERROR]"+config.LogColorReset+" "+format, args...)
}

func initEnvs() error {
	var err error
	envs, err = config.Envs()
	if err != nil {
		return fmt.Errorf("loading server config: %w", err)
	}
	appLogger.Printf("[INFO] Server config loaded")
	return nil
}

func initMongo(ctx context.Context) error {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", envs.DBUser, envs.DBPassword, envs.DBHost, envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	appLogger.Printf("[INFO] Connected to MongoDB")
	return nil
}

func initRedis(ctx context.Context) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	appLogger.Printf("[INFO] Connected to Redis")
	return nil
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, envs.DBName, "mazes")
	appLogger.Printf("[INFO] Maze repository initialized")
}

func initMazeCache(client *redis.Client) error {
	var err error
	mazeCache, err = cache.NewRedisMazeCache(client, envs.CacheTTL)
	if err != nil {
		return fmt.Errorf("creating maze cache: %w", err)
	}
	appLogger.Printf("[INFO] Maze cache initialized")
	return nil
}

func initMazeService(opts ...service.Option) {
	opts = append(opts, service.WithLogger(newLogger("MAZE-SERVICE", config.ColorCyan)))
	mazeService = service.NewMazeService(opts...)
	appLogger.Printf("[INFO] Maze service initialized")
}

func initMazeController() error {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		return fmt.Errorf("creating maze controller: %w", err)
	}
	appLogger.Printf("[INFO] Maze controller initialized")
	return nil
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:     "/api",
		GinMode:     envs.GinMode,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Printf("[INFO] Router initialized")
}

// serve wires the HTTP API and blocks until the server stops. Clients opened here are
// closed before it returns.
func serve() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := initEnvs(); err != nil {
		return err
	}
	if err := initMongo(ctx); err != nil {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	if err := initRedis(ctx); err != nil {
		_ = redisClient.Close()
		return err
	}
	defer redisClient.Close()

	initMazeRepo(mongoClient)
	if err := initMazeCache(redisClient); err != nil {
		return err
	}
	initMazeService(service.WithRepo(mazeRepo), service.WithCache(mazeCache))
	if err := initMazeController(); err != nil {
		return err
	}
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}

func writeOutput(path string, m *maze.Maze, s maze.Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write to output file %q: %w", path, err)
	}
	if err := encoder.WriteHex(f, encoder.FromMaze(m, s)); err != nil {
		f.Close()
		return fmt.Errorf("cannot write to output file %q: %w", path, err)
	}
	return f.Close()
}

// generate builds the maze of the config file at path and writes its output file. Unless
// noUI is set it then runs the terminal menu, rewriting the output file on every
// regeneration.
func generate(path string, noUI bool) error {
	file, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	initMazeService()
	spec := file.Spec()
	m, s, err := mazeService.Build(spec)
	if err != nil {
		return err
	}
	if err := writeOutput(file.OutputFile, m, s); err != nil {
		return err
	}
	fmt.Println("Output file generated successfully.")
	if noUI {
		return nil
	}

	next := mazeService.Regenerator(spec)
	regenerate := func() (*maze.Maze, maze.Solution, error) {
		m, s, err := next()
		if err != nil {
			return nil, maze.Solution{}, err
		}
		if err := writeOutput(file.OutputFile, m, s); err != nil {
			return nil, maze.Solution{}, err
		}
		return m, s, nil
	}

	return ui.New(m, s, ui.Config{Regenerate: regenerate, Clear: true}).Run()
}

func main() {
	serveMode := flag.Bool("serve", false, "run the HTTP API instead of the terminal UI")
	noUI := flag.Bool("no-ui", false, "write the output file and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-no-ui] <config_file>\n       %s -serve\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	appLogger = newLogger("APP", config.ColorGreen)

	if *serveMode {
		appLogger = newLogger("SERVER", config.ColorPurple)
		if err := serve(); err != nil {
			logError("%v", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := generate(flag.Arg(0), *noUI); err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}
