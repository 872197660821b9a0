package repository

const (
	createVideoQuery = `INSERT INTO video_files (user_id, file_name, file_size, duration, width, height, s3_key, s3_bucket, format, mime_type)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING *`
	getVideoByIDQuery = `SELECT video_id, user_id, file_name, file_size, duration, width, height, s3_key, s3_bucket, format, mime_type, uploaded_at, updated_at
					FROM video_files WHERE video_id = $1`

	createJobQuery = `INSERT INTO edit_jobs (job_id, user_id, video_id, segments, regions, status, progress, progress_message)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING *`
	getJobByIDQuery = `SELECT job_id, user_id, video_id, remote_task_id, segments, regions, status, progress, progress_message,
					output_url, output_s3_key, error_message, created_at, updated_at, completed_at
					FROM edit_jobs WHERE job_id = $1`
	getJobsByUserIDQuery = `SELECT job_id, user_id, video_id, remote_task_id, segments, regions, status, progress, progress_message,
					output_url, output_s3_key, error_message, created_at, updated_at, completed_at
					FROM edit_jobs WHERE user_id = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	getTotalJobsByUserIDQuery = `SELECT COUNT(job_id) FROM edit_jobs WHERE user_id = $1`
	updateJobSubmissionQuery  = `UPDATE edit_jobs SET remote_task_id = $2, status = $3, updated_at = now() WHERE job_id = $1`
	updateJobStatusQuery      = `UPDATE edit_jobs
					SET status = $2,
					    progress = $3,
					    progress_message = $4,
					    output_url = COALESCE($5, output_url),
					    output_s3_key = COALESCE($6, output_s3_key),
					    error_message = COALESCE($7, error_message),
					    completed_at = COALESCE($8, completed_at),
					    updated_at = now()
					WHERE job_id = $1`
	deleteJobQuery = `DELETE FROM edit_jobs WHERE job_id = $1 AND user_id = $2`
)
