// Package domain contains the core model for imperial.
//
// The centre of the package is ImperialDate, a value object that renders a
// proleptic-Gregorian CalendarDate as "{class} {fraction} {yyy}.M{n}", e.g.
// 2016-06-23 as "0 478 016.M3". The domain does not depend on YAML parsing,
// the terminal or the filesystem. Infra/adapters map into/from these types.
package domain
