package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
	"time"
)

const (
	configVarName  = "CONFIG"                      // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "../../dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "../../dev/secrets.dev.jsonc" // Path to config.json in development environment
)

type Config struct {
	Secrets            Secrets        `json:"-"`
	LogFile            string         `json:"log_file"`
	LogLevel           string         `json:"log_level"`
	ServicePort        uint           `json:"service_port"`
	Host               string         `json:"host"`
	DbFile             string         `json:"db_file"`
	BlockedActorsFile  string         `json:"blocked_actors_file"`
	BlockedDomainsFile string         `json:"blocked_domains_file"`
	FilteredWordsFile  string         `json:"filtered_words_file"`
	Delivery           DeliveryConfig `json:"delivery"`
	Boosts             BoostConfig    `json:"boosts"`
	TorSocksProxy      string         `json:"tor_socks_proxy"`
	I2pSocksProxy      string         `json:"i2p_socks_proxy"`
	Account            *UserInfo      `json:"account"`
}

type DeliveryConfig struct {
	MaxAttempts      int     `json:"max_attempts"`
	RetryIntervalSec int     `json:"retry_interval_sec"`
	DomainPauseSec   int     `json:"domain_pause_sec"`
	MaxParallelSends int     `json:"max_parallel_sends"`
	OutRatePerSec    float64 `json:"out_rate_per_sec"`
	ProbeTimeoutSec  int     `json:"probe_timeout_sec"`
}

type BoostConfig struct {
	FreshnessWindowDays int      `json:"freshness_window_days"`
	UnderstoodLanguages []string `json:"understood_languages"`
	VotesDisabled       bool     `json:"votes_disabled"`
	StripFormatting     bool     `json:"strip_formatting"`
}

type UserInfo struct {
	User                    string    `json:"user"`
	Published               time.Time `json:"published"`
	ManuallyApprovesFollows bool      `json:"manually_approves_follows"`
	ProfilePic              string    `json:"profile_pic"`
	HeaderPic               string    `json:"header_pic"`
	PubKey                  string    `json:"pub_key"`
	PrivKey                 string    `json:"priv_key"`
}

type Secrets struct {
	PrivKeyPass string   `json:"account_privkey_passphrase"`
	MetricsAuth string   `json:"metrics_auth"`
	ApiKeys     []string `json:"api_keys"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	applyDefaults(&config)
	return &config
}

// applyDefaults fills in the delivery and boost knobs left out of the
// config file. The values mirror the protocol's fixed design decisions.
func applyDefaults(config *Config) {
	d := &config.Delivery
	if d.MaxAttempts == 0 {
		d.MaxAttempts = 20
	}
	if d.RetryIntervalSec == 0 {
		d.RetryIntervalSec = 30
	}
	if d.DomainPauseSec == 0 {
		d.DomainPauseSec = 4
	}
	if d.MaxParallelSends == 0 {
		d.MaxParallelSends = 1000
	}
	if d.OutRatePerSec == 0 {
		d.OutRatePerSec = 20
	}
	if d.ProbeTimeoutSec == 0 {
		d.ProbeTimeoutSec = 10
	}
	b := &config.Boosts
	if b.FreshnessWindowDays == 0 {
		b.FreshnessWindowDays = 90
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
