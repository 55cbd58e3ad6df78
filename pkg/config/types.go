package config

import "time"

type Settings struct {
	Host            string
	Port            int
	Database        string
	User            string
	Password        string
	Machines        int
	CollectInterval time.Duration
	Debug           bool
}

type Config struct {
	Database struct {
		Host     string `ini:"host" validate:"required"`
		Port     int    `ini:"port" validate:"required,min=1,max=65535"`
		Name     string `ini:"name" validate:"required"`
		User     string `ini:"user" validate:"required"`
		Password string `ini:"password" validate:"required"`
	} `ini:"database"`
	Demo struct {
		Machines int `ini:"machines" validate:"required,min=1"`
	} `ini:"demo"`
	Collect struct {
		Interval int `ini:"interval" validate:"required,min=1"`
	} `ini:"collect"`
	Logging struct {
		Debug bool `ini:"debug"`
	} `ini:"logging"`
}
