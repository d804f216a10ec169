// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/user, domain/workflow,
// domain/project, domain/task, domain/comment, domain/timelog,
// domain/notification). Authorization predicates live in domain/access.
// This root package holds sentinel errors and validation types shared by all
// entities.
package domain
