package store

const (
	upsertProduct = `
		INSERT INTO product_cache (
			local_id,
			remote_id,
			tenant_id,
			sku,
			name,
			unit_price,
			unit,
			default_qty,
			stock,
			updated_at,
			synced
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (local_id) DO UPDATE SET
			remote_id   = excluded.remote_id,
			tenant_id   = excluded.tenant_id,
			sku         = excluded.sku,
			name        = excluded.name,
			unit_price  = excluded.unit_price,
			unit        = excluded.unit,
			default_qty = excluded.default_qty,
			stock       = excluded.stock,
			updated_at  = excluded.updated_at,
			synced      = excluded.synced;`

	getProduct = `
		SELECT
			local_id,
			remote_id,
			tenant_id,
			sku,
			name,
			unit_price,
			unit,
			default_qty,
			stock,
			updated_at,
			synced
		FROM product_cache
		WHERE local_id = $1;`

	getProductByRemoteID = `
		SELECT
			local_id,
			remote_id,
			tenant_id,
			sku,
			name,
			unit_price,
			unit,
			default_qty,
			stock,
			updated_at,
			synced
		FROM product_cache
		WHERE remote_id = $1;`

	getAllProducts = `
		SELECT
			local_id,
			remote_id,
			tenant_id,
			sku,
			name,
			unit_price,
			unit,
			default_qty,
			stock,
			updated_at,
			synced
		FROM product_cache;`

	deleteProduct = `
		DELETE FROM product_cache
		WHERE local_id = $1;`

	clearProducts = `
		DELETE FROM product_cache;`

	upsertPendingSale = `
		INSERT INTO pending_sales (
			id,
			tenant_id,
			user_id,
			items,
			total,
			created_at,
			synced,
			attempts,
			last_error
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			tenant_id  = excluded.tenant_id,
			user_id    = excluded.user_id,
			items      = excluded.items,
			total      = excluded.total,
			created_at = excluded.created_at,
			synced     = excluded.synced,
			attempts   = excluded.attempts,
			last_error = excluded.last_error;`

	getPendingSale = `
		SELECT
			id,
			tenant_id,
			user_id,
			items,
			total,
			created_at,
			synced,
			attempts,
			last_error
		FROM pending_sales
		WHERE id = $1;`

	getAllPendingSales = `
		SELECT
			id,
			tenant_id,
			user_id,
			items,
			total,
			created_at,
			synced,
			attempts,
			last_error
		FROM pending_sales;`

	getPendingQueue = `
		SELECT
			id,
			tenant_id,
			user_id,
			items,
			total,
			created_at,
			synced,
			attempts,
			last_error
		FROM pending_sales
		WHERE tenant_id = $1 AND synced = 0
		ORDER BY created_at ASC;`

	countPendingSales = `
		SELECT COUNT(*)
		FROM pending_sales
		WHERE tenant_id = $1 AND synced = 0;`

	pruneSyncedSales = `
		DELETE FROM pending_sales
		WHERE tenant_id = $1 AND synced = 1 AND created_at < $2;`

	deletePendingSale = `
		DELETE FROM pending_sales
		WHERE id = $1;`

	clearPendingSales = `
		DELETE FROM pending_sales;`

	insertConflictEntry = `
		INSERT INTO conflict_log (
			id,
			tenant_id,
			entity_type,
			entity_id,
			local_snapshot,
			remote_snapshot,
			resolution,
			resolved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	getConflictEntry = `
		SELECT
			id,
			tenant_id,
			entity_type,
			entity_id,
			local_snapshot,
			remote_snapshot,
			resolution,
			resolved_at
		FROM conflict_log
		WHERE id = $1;`

	getAllConflictEntries = `
		SELECT
			id,
			tenant_id,
			entity_type,
			entity_id,
			local_snapshot,
			remote_snapshot,
			resolution,
			resolved_at
		FROM conflict_log
		ORDER BY resolved_at ASC;`

	clearConflictEntries = `
		DELETE FROM conflict_log;`
)
