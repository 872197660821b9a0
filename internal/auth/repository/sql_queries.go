package repository

const (
	createUserQuery = `INSERT INTO users (username, email, password, fullname, tier)
					VALUES ($1, $2, $3, $4, $5) RETURNING *`
	getUserByIDQuery = `SELECT user_id, username, email, password, fullname, tier, created_at, updated_at FROM users WHERE user_id = $1`
	findUserByEmail  = `SELECT user_id, username, email, password, fullname, tier, created_at, updated_at FROM users WHERE email = $1`
	updateUserQuery  = `UPDATE users
					SET username = COALESCE(NULLIF($1, ''), username),
					    email = COALESCE(NULLIF($2, ''), email),
					    fullname = COALESCE(NULLIF($3, ''), fullname),
					    tier = COALESCE(NULLIF($4, ''), tier),
					    updated_at = now()
					WHERE user_id = $5 RETURNING *`
	getUsageStatsQuery = `SELECT COUNT(job_id) AS total_jobs,
					COUNT(job_id) FILTER (WHERE status = 'completed') AS completed_jobs,
					COUNT(job_id) FILTER (WHERE status = 'failed') AS failed_jobs
					FROM edit_jobs WHERE user_id = $1`
)
