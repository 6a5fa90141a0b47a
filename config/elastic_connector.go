package config

import (
	"github.com/olivere/elastic/v7"
)

func SetupElasticSearch(cfg *Config) (*elastic.Client, error) {
	// sniffing resolves node addresses that are usually unreachable from
	// outside a container network
	return elastic.NewClient(elastic.SetURL(cfg.ElasticUrl), elastic.SetSniff(false))
}
