package main

// schema cria as tabelas na ordem das chaves estrangeiras. Todas as instruções são idempotentes.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            VARCHAR(32) PRIMARY KEY,
		email         VARCHAR(255) NOT NULL UNIQUE,
		name          VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(16) NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
		avatar        TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS ad_accounts (
		id           VARCHAR(32) PRIMARY KEY,
		platform     VARCHAR(64) NOT NULL,
		account_id   VARCHAR(255) NOT NULL,
		account_name VARCHAR(255) NOT NULL,
		currency     VARCHAR(8) NOT NULL DEFAULT 'USD',
		status       VARCHAR(16) NOT NULL DEFAULT 'active',
		config       TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (platform, account_id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_accounts (
		user_id    VARCHAR(32) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		account_id VARCHAR(32) NOT NULL REFERENCES ad_accounts(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, account_id)
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id            VARCHAR(32) PRIMARY KEY,
		account_id    VARCHAR(32) NOT NULL REFERENCES ad_accounts(id) ON DELETE CASCADE,
		campaign_id   VARCHAR(255) NOT NULL,
		campaign_name VARCHAR(255) NOT NULL,
		status        VARCHAR(16) NOT NULL DEFAULT 'active',
		objective     VARCHAR(64),
		budget        NUMERIC(14, 2),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (account_id, campaign_id)
	)`,
	`CREATE TABLE IF NOT EXISTS campaign_daily_data (
		id          VARCHAR(32) PRIMARY KEY,
		campaign_id VARCHAR(32) NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		impressions BIGINT NOT NULL DEFAULT 0,
		clicks      BIGINT NOT NULL DEFAULT 0,
		cost        NUMERIC(14, 2) NOT NULL DEFAULT 0,
		conversions BIGINT NOT NULL DEFAULT 0,
		revenue     NUMERIC(14, 2) NOT NULL DEFAULT 0,
		UNIQUE (campaign_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS ad_orders (
		id                VARCHAR(32) PRIMARY KEY,
		platform          VARCHAR(64) NOT NULL,
		order_id          VARCHAR(255) NOT NULL,
		account_id        VARCHAR(32) REFERENCES ad_accounts(id) ON DELETE SET NULL,
		status            VARCHAR(32) NOT NULL,
		order_amount      NUMERIC(14, 2) NOT NULL DEFAULT 0,
		commission_amount NUMERIC(14, 2) NOT NULL DEFAULT 0,
		currency          VARCHAR(8) NOT NULL DEFAULT 'USD',
		conversion_time   TIMESTAMPTZ NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (platform, order_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_orders_conversion_time ON ad_orders (conversion_time)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_orders_account_id ON ad_orders (account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_campaign_daily_data_date ON campaign_daily_data (date)`,
}
