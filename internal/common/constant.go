package common

// DefaultDatabaseFile is the store file name used when no path is configured.
const DefaultDatabaseFile = "megastore.db"

// StoreIDKey is the metadata key under which the store UUID is persisted.
const StoreIDKey = "store_uuid"
