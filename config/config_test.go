package config

import "testing"

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "STORAGE_DRIVER", "DB_PATH", "REDIS_URL", "REDIS_KEY", "ELASTIC_URL", "ELASTIC_INDEX",
		"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET", "MINIO_OBJECT",
		"MINIO_SECURE", "ACTIVITY_DRIVER", "ACTIVITY_MAX",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != ":8080" || cfg.StorageDriver != "file" || cfg.DbPath != "db.json" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ActivityDriver != "memory" || cfg.ActivityMax != DEFAULT_ACTIVITY_MAX {
		t.Fatalf("unexpected activity defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "minio")
	t.Setenv("MINIO_ENDPOINT", "play.min.io")
	t.Setenv("MINIO_ACCESS_KEY", "access")
	t.Setenv("MINIO_SECRET_KEY", "secret")
	t.Setenv("MINIO_BUCKET", "books")
	t.Setenv("MINIO_SECURE", "true")
	t.Setenv("ACTIVITY_MAX", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != ":9000" || !cfg.MinioSecure || cfg.MinioObject != DEFAULT_MINIO_OBJECT || cfg.ActivityMax != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "mongo"}},
		{name: "redis without url", env: map[string]string{"STORAGE_DRIVER": "redis"}},
		{name: "elastic without url", env: map[string]string{"STORAGE_DRIVER": "elastic"}},
		{name: "minio without bucket", env: map[string]string{"STORAGE_DRIVER": "minio", "MINIO_ENDPOINT": "x"}},
		{name: "redis activity without url", env: map[string]string{"ACTIVITY_DRIVER": "redis"}},
		{name: "bad activity max", env: map[string]string{"ACTIVITY_MAX": "0"}},
		{name: "bad minio secure", env: map[string]string{"MINIO_SECURE": "sometimes"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
