// Package pokeapi provides an HTTP client for the PokeAPI catalog.
//
// # Overview
//
// The client performs one read-only request, GET {base}/pokemon/{token},
// and decodes the response into a Creature: id, lower-case name, sprite URL,
// type names in slot order and base stats.
//
//	client, err := pokeapi.NewClient("https://pokeapi.co/api/v2")
//	if err != nil {
//		return err
//	}
//	c, err := client.FetchCreature(ctx, pokeapi.NormalizeToken(" Pikachu "))
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation; there is no client-side timeout
//   - Set Accept: application/json and a pokedex/ User-Agent
//   - Escape the token as a single path segment
//
// # Error Handling
//
// Failures come back as coded errors from internal/errors:
//
//   - Blank token: CodeInvalidArgument, no request is made
//   - HTTP 404: CodeNotFound
//   - Transport failure or any other non-2xx status: CodeUnavailable
//   - Undecodable or incomplete payload: CodeInternal
//
// A payload missing its id, name or types never produces a partial Creature.
package pokeapi
