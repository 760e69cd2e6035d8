package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, read from config.toml beside
// the executable with env and flag overrides layered on top.
type AppConfig struct {
	Server    ServerConfig    `toml:"server"`
	Data      DataConfig      `toml:"data"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	DevMode bool   `toml:"dev_mode"`
}

// DataConfig locates the spreadsheet sources inside the data directory.
type DataConfig struct {
	DataDir       string   `toml:"data_dir"`
	SalesFiles    []string `toml:"sales_files"`
	CustomersFile string   `toml:"customers_file"`
	ProductsFile  string   `toml:"products_file"`
	StoresFile    string   `toml:"stores_file"`
}

// DashboardConfig tunes the dashboard behaviour.
type DashboardConfig struct {
	TopN             int `toml:"top_n"`
	ExportTTLMinutes int `toml:"export_ttl_minutes"`
}

// LoadInfo records which settings the config file set explicitly, so CLI
// flags only fill the gaps.
type LoadInfo struct {
	PortSpecified bool
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host:    "127.0.0.1",
			Port:    18600,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
			SalesFiles: []string{
				"Base Vendas - 2020.xlsx",
				"Base Vendas - 2021.xlsx",
				"Base Vendas - 2022.xlsx",
			},
			CustomersFile: "Cadastro Clientes.xlsx",
			ProductsFile:  "Cadastro Produtos.xlsx",
			StoresFile:    "Cadastro Lojas.xlsx",
		},
		Dashboard: DashboardConfig{
			TopN:             10,
			ExportTTLMinutes: 15,
		},
	}
}

// ExeDir returns the directory of the running executable.
func ExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadWithInfo reads config.toml from the executable directory, falling back
// to defaults when the file is absent.
func LoadWithInfo() (*AppConfig, LoadInfo, error) {
	info := LoadInfo{}
	cfg := Default()

	exeDir, err := ExeDir()
	if err != nil {
		exeDir = "."
	}
	path := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecified(data)

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, info, err
	}

	applyEnv(cfg)
	return cfg, info, nil
}

// Load reads config.toml without load metadata.
func Load() (*AppConfig, error) {
	cfg, _, err := LoadWithInfo()
	return cfg, err
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("DASHVENDAS_DATA_DIR"); v != "" {
		cfg.Data.DataDir = v
	}
	if v := os.Getenv("DASHVENDAS_HOST"); v != "" {
		cfg.Server.Host = v
	}
}

func isPortSpecified(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}
	server, ok := raw["server"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = server["port"]
	return ok
}

// Save writes the configuration back to config.toml beside the executable.
func Save(cfg *AppConfig) error {
	exeDir, err := ExeDir()
	if err != nil {
		exeDir = "."
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir creates the data directory and its exports subdirectory,
// returning the absolute data path.
func EnsureDataDir(cfg *AppConfig) (string, error) {
	dataDir := resolveDataDir(cfg)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Join(dataDir, "exports"), 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

func resolveDataDir(cfg *AppConfig) string {
	if filepath.IsAbs(cfg.Data.DataDir) {
		return cfg.Data.DataDir
	}
	exeDir, err := ExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, cfg.Data.DataDir)
}

// SourcePaths resolves the configured source files against the data dir.
func SourcePaths(cfg *AppConfig) (sales []string, customers, products, stores string) {
	dataDir := resolveDataDir(cfg)
	for _, f := range cfg.Data.SalesFiles {
		sales = append(sales, filepath.Join(dataDir, f))
	}
	customers = filepath.Join(dataDir, cfg.Data.CustomersFile)
	products = filepath.Join(dataDir, cfg.Data.ProductsFile)
	stores = filepath.Join(dataDir, cfg.Data.StoresFile)
	return sales, customers, products, stores
}

// ExportDir returns the directory export workbooks are written to.
func ExportDir(cfg *AppConfig) string {
	return filepath.Join(resolveDataDir(cfg), "exports")
}
