//go:build !nomysql

package database

import (
	_ "github.com/go-sql-driver/mysql" // MySQL driver, left out with -tags nomysql
)
