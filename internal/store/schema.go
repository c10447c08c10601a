package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    saved_at             TEXT NOT NULL,
    cash_balance         REAL NOT NULL,
    monthly_revenue      REAL NOT NULL,
    monthly_expenses     REAL NOT NULL,
    b2b_total            INTEGER NOT NULL,
    b2b_new              INTEGER NOT NULL,
    b2b_cac              REAL NOT NULL,
    b2b_churn_rate       REAL NOT NULL,
    b2c_total            INTEGER NOT NULL,
    b2c_new              INTEGER NOT NULL,
    b2c_cac              REAL NOT NULL,
    b2c_churn_rate       REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS investors (
    firm_name            TEXT PRIMARY KEY,
    type                 TEXT,
    location             TEXT,
    website              TEXT,
    office_contact       TEXT,
    portfolio_examples   TEXT,
    investment_focus     TEXT
);

CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at);
CREATE INDEX IF NOT EXISTS idx_investors_type ON investors(type);
`
