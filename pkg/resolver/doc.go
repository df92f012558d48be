// Copyright (c) 2026, Netgrid Labs.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package resolver implements the firmware version resolution engine: for
// each device it determines the highest available firmware version within
// the device's upgrade branch.
//
// # Resolution
//
// Resolution is a pure, synchronous fold over in-memory snapshots:
//
//	r := resolver.New(resolver.WithRecommendedLookup(client.GatewayRecommended))
//	resolved, failures := r.ResolveAll(ctx, devices, catalog)
//
// For every device the engine:
//
//  1. Determines the device family (explicit tag, or model matching).
//  2. Parses the current firmware version per the family's syntax.
//  3. Filters the candidate catalog to the family's firmware role and to
//     candidates sharing the current version's upgrade branch.
//  4. Picks the maximum of the filtered set.
//
// A device that cannot be resolved (malformed version, unknown family) is
// emitted into the failures list and never aborts the batch. An empty
// filtered candidate set is a valid absence, not a failure.
//
// # Gateway lookups
//
// For the compound gateway family the engine additionally resolves the
// vendor-recommended version through an injected per-serial lookup. Lookup
// failures degrade to an absent value; they are logged and counted but
// never recorded as resolution failures.
package resolver
