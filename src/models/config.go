package models

// MConfig Structure
type MConfig struct {
	Name     string          `yaml:"name"`
	Host     string          `yaml:"host"`
	Port     int             `yaml:"port"`
	LogLevel string          `yaml:"log_level"`
	GrpcHost string          `yaml:"grpc_host"`
	GrpcPort int             `yaml:"grpc_port"`
	Cache    MCacheConfig    `yaml:"cache"`
	Network  MNetworkConfig  `yaml:"network"`
	Market   MMarketConfig   `yaml:"market"`
	Upstream MUpstreamConfig `yaml:"upstream"`
}

type MCacheConfig struct {
	Provider               string     `yaml:"provider"` // memory, redis, sqlite or postgres
	RedisURL               string     `yaml:"redis_url"`
	DBPath                 string     `yaml:"db_path"`
	DBConnectionString     string     `yaml:"db_connection_string"`
	CleanupIntervalSeconds int        `yaml:"cleanup_interval_seconds"`
	StockQuote             MTTLConfig `yaml:"stock_quote"`
	StockIndexes           MTTLConfig `yaml:"stock_indexes"`
	ExchangeRates          MTTLConfig `yaml:"exchange_rates"`
}

// MTTLConfig holds the two cache lifetimes (seconds) of one resource
type MTTLConfig struct {
	MarketHoursSeconds int `yaml:"market_hours_seconds"`
	OffHoursSeconds    int `yaml:"off_hours_seconds"`
}

type MNetworkConfig struct {
	Proxies        []string `yaml:"proxies"`
	RequestTimeout int      `yaml:"timeout"`
	UserAgent      string   `yaml:"user_agent"`
}

type MMarketConfig struct {
	MIC          string `yaml:"mic"`
	Timezone     string `yaml:"timezone"`
	SessionOpen  string `yaml:"session_open"`  // HH:MM, used when the MIC has no registry calendar
	SessionClose string `yaml:"session_close"` // HH:MM
	LunchStart   string `yaml:"lunch_start"`   // HH:MM, xstc only
	LunchEnd     string `yaml:"lunch_end"`     // HH:MM
}

type MUpstreamConfig struct {
	VietStock   MVietStockConfig   `yaml:"vietstock"`
	Vietcombank MVietcombankConfig `yaml:"vietcombank"`
	CafeF       MCafeFConfig       `yaml:"cafef"`
}

type MVietStockConfig struct {
	BaseURL          string `yaml:"base_url"`
	TradingPath      string `yaml:"trading_path"`
	CompanySearchURL string `yaml:"company_search_url"` // {code} is replaced by the symbol
	ChartBaseURL     string `yaml:"chart_base_url"`
	SourceLabel      string `yaml:"source_label"`
	BootstrapTimeout int    `yaml:"bootstrap_timeout"`
}

type MVietcombankConfig struct {
	RatesURL string `yaml:"rates_url"`
}

type MCafeFConfig struct {
	IndexesURL string `yaml:"indexes_url"`
	Referer    string `yaml:"referer"`
}
