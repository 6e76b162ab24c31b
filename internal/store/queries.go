package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.
// negotiation_history deliberately has no UPDATE or DELETE statement.

// Listing queries.
const (
	queryUpsertListing = `
		INSERT INTO listings (
			user_id, vinted_item_id, title, category,
			price, currency, views, likes, status,
			listed_at, updated_at
		) VALUES (
			@user_id, @vinted_item_id, @title, @category,
			@price, @currency, @views, @likes, @status,
			@listed_at, now()
		)
		ON CONFLICT (vinted_item_id) DO UPDATE SET
			title      = EXCLUDED.title,
			category   = EXCLUDED.category,
			price      = EXCLUDED.price,
			currency   = EXCLUDED.currency,
			views      = EXCLUDED.views,
			likes      = EXCLUDED.likes,
			status     = EXCLUDED.status,
			updated_at = now()
		RETURNING id, listed_at, updated_at`

	queryGetListing = `
		SELECT id, user_id, vinted_item_id, title, category,
			price, currency, views, likes, status, listed_at, updated_at
		FROM listings
		WHERE id = $1 AND user_id = $2`

	queryListListings = `
		SELECT id, user_id, vinted_item_id, title, category,
			price, currency, views, likes, status, listed_at, updated_at
		FROM listings
		WHERE user_id = $1
		ORDER BY listed_at DESC
		LIMIT $2`
)

// Buyer signal queries.
const (
	queryCountCompletedPurchases = `
		SELECT COUNT(*)
		FROM buyer_transactions
		WHERE buyer_id = $1 AND status = 'completed'`

	queryCountOffersForListing = `
		SELECT COUNT(*)
		FROM negotiation_history
		WHERE listing_id = $1`
)

// Rule queries.
const (
	queryCreateRule = `
		INSERT INTO negotiation_rules (
			user_id, name, description, condition, threshold,
			action, counter_percentage, priority, enabled,
			created_at, updated_at
		) VALUES (
			@user_id, @name, @description, @condition, @threshold,
			@action, @counter_percentage, @priority, @enabled,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetRule = `
		SELECT id, user_id, name, description, condition, threshold,
			action, counter_percentage, priority, enabled, created_at, updated_at
		FROM negotiation_rules
		WHERE id = $1 AND user_id = $2`

	queryListRules = `
		SELECT id, user_id, name, description, condition, threshold,
			action, counter_percentage, priority, enabled, created_at, updated_at
		FROM negotiation_rules
		WHERE user_id = $1
		ORDER BY priority DESC, created_at ASC`

	queryListEnabledRules = `
		SELECT id, user_id, name, description, condition, threshold,
			action, counter_percentage, priority, enabled, created_at, updated_at
		FROM negotiation_rules
		WHERE user_id = $1 AND enabled = true
		ORDER BY priority DESC, created_at ASC`

	queryDeleteRule = `
		DELETE FROM negotiation_rules
		WHERE id = $1 AND user_id = $2`
)

// History queries.
const (
	queryInsertHistory = `
		INSERT INTO negotiation_history (
			offer_id, listing_id, user_id, offer_amount, action,
			matched_rule_id, counter_amount, reasoning,
			buyer_score, urgency_score, created_at
		) VALUES (
			@offer_id, @listing_id, @user_id, @offer_amount, @action,
			@matched_rule_id, @counter_amount, @reasoning,
			@buyer_score, @urgency_score, now()
		)
		RETURNING id, created_at`

	queryListHistory = `
		SELECT id, offer_id, listing_id, user_id, offer_amount, action,
			matched_rule_id, counter_amount, reasoning,
			buyer_score, urgency_score, created_at
		FROM negotiation_history
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT $3`

	queryGetStats = `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE h.action = 'accept')  AS accepted,
			COUNT(*) FILTER (WHERE h.action = 'reject')  AS rejected,
			COUNT(*) FILTER (WHERE h.action = 'counter') AS countered,
			COUNT(*) FILTER (WHERE h.action = 'ignore')  AS ignored,
			COALESCE(AVG((l.price - h.offer_amount) / NULLIF(l.price, 0) * 100)
				FILTER (WHERE h.action = 'accept'), 0) AS avg_discount_pct,
			COALESCE(SUM(l.price - h.offer_amount)
				FILTER (WHERE h.action = 'reject'), 0) AS revenue_saved
		FROM negotiation_history h
		JOIN listings l ON l.id = h.listing_id
		WHERE h.user_id = $1 AND h.created_at >= $2`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
