package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS embeddings (
    model       TEXT NOT NULL,
    text        TEXT NOT NULL,
    dim         INTEGER NOT NULL,
    vector      BLOB NOT NULL,
    created_at  TEXT NOT NULL,
    PRIMARY KEY (model, text)
);
`
