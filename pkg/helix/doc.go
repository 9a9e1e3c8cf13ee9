// Package helix provides types, interfaces, and helpers for working with
// the Twitch Helix API.
//
// # Overview
//
// The helix package defines the query primitives (Params, Paginator,
// Result) and the interfaces for the core client and the resource-oriented
// clients (UsersClient, StreamsClient, ...). A concrete implementation is
// provided by the helixclient package, which wires configuration,
// transport, and credentials. Most consumers should import helixclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/streamkit-io/helix/pkg/helix"
//	  "github.com/streamkit-io/helix/pkg/helixclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := helixclient.New(&helix.Config{ClientID: "my-client-id"})
//	  if err != nil { log.Fatal(err) }
//
//	  users, err := cli.Users().List(ctx, &helix.UsersListParams{Logins: []string{"twitchdev"}})
//	  if err != nil { log.Fatal(err) }
//	  _ = users
//	}
//
// # Queries and pagination
//
// The generic surface takes a path and an ordered Params set. Multi-valued
// parameters serialize in repeated-key form (login=a&login=b), which is the
// encoding Helix expects. Cursor pagination threads a single Paginator
// through successive calls:
//
//	p := helix.NewPaginator(helix.DirectionAfter)
//	for {
//	  res, err := cli.Get(ctx, "/streams", helix.NewParams().Set("first", "100"), helix.WithPaginator(p))
//	  if err != nil { log.Fatal(err) } // missing credentials
//	  if !res.Succeeded() { break }    // transport or API failure
//	  // ... decode res ...
//	  if p.Cursor() == "" { break }    // no further pages
//	}
//
// # Errors
//
// Missing credentials surface immediately as ErrMissingClientID or
// ErrMissingToken, before any network I/O. Transport and API failures are
// modeled as data: the failure case of a Result. APIError carries the Helix
// error envelope, and helpers such as IsNotFound, IsUnauthorized, and
// IsRateLimited make it easy to branch on common cases.
package helix
