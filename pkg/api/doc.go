// Package api serves the portfolio content API over HTTP.
//
// Routes are mounted under a configurable base path (default "/api"):
//
//	GET    /about                   public
//	PUT    /about                   admin, upserts the singleton
//	GET    /contact/info            public, null when unset
//	PUT    /contact/info            admin, upserts the singleton
//	GET    /contact/messages        admin
//	POST   /contact/message         public
//	DELETE /contact/messages/{id}   admin
//	GET    /education[/{id}]        public
//	POST   /education               admin
//	PUT    /education/{id}          admin
//	DELETE /education/{id}          admin
//	GET    /projects[/{id}]         public
//	POST   /projects                admin
//	PUT    /projects/{id}           admin
//	DELETE /projects/{id}           admin
//	GET    /skills[/{id}]           public
//	POST   /skills                  admin
//	PUT    /skills/{id}             admin
//	DELETE /skills/{id}             admin
//	POST   /auth/login              public, only when an admin account is configured
//
// GET /health and GET /metrics are served at the root.
//
// Every error body is {"error": "<message>"} with a fixed message per
// operation. Causes are logged, never returned.
package api
