package config

import "github.com/namsral/flag"

type Config struct {
	InitWeights bool
	LoadPath    string
	SavePath    string
	Alpha       float64
	Seed        uint64
	Games       int
	Threads     int
	LogFile     string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("td2048", flag.ContinueOnError)
	fs.BoolVar(&c.InitWeights, "init", false, "start from freshly zeroed weight tables")
	fs.StringVar(&c.LoadPath, "load", "", "weight file to read at startup")
	fs.StringVar(&c.SavePath, "save", "", "weight file to write at exit")
	fs.Float64Var(&c.Alpha, "alpha", 0, "learning rate; 0 disables learning")
	fs.Uint64Var(&c.Seed, "seed", 0, "seed for the tile environment")
	fs.IntVar(&c.Games, "games", 1000, "number of episodes to play")
	fs.IntVar(&c.Threads, "threads", 1, "worker count for evaluation games")
	fs.StringVar(&c.LogFile, "logfile", "", "CSV file for per-episode results")
	err := fs.Parse(args)
	return err
}
