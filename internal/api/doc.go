// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

/*
Package api provides the HTTP REST layer for Chinookd.

Key components:

  - Router: Chi route configuration and middleware stack integration
  - Handler: request handlers, one per endpoint
  - Response formatting: bodies mirror store row shapes directly, with a
    single {"detail":{"error":...}} envelope for failures

Endpoints:

  - GET  /tracks                      paged track listing
  - GET  /tracks/composers            track names for one composer
  - POST /albums                      create album for an existing artist
  - GET  /albums/{album_id}           album lookup
  - PUT  /customers/{customer_id}     partial customer contact update
  - GET  /sales                       aggregate statistics by category
  - GET  /healthz                     liveness and store reachability
  - GET  /metrics                     Prometheus exposition

Status codes are part of the API contract: missing artists, customers,
empty composer searches and unknown sales categories are 404 with the
detail envelope, while a missing album is a 200 null body.
*/
package api
