// Package domain contains the value types decoded from the public APIs and
// printed by the commands: pet media, locations and weather, jokes, coin
// quotes, news items and stored price snapshots. They are free of transport
// concerns so every client and command can share them.
package domain
