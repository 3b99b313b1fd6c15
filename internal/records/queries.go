package records

// Column aliases double as projection paths: a dotted alias nests, a
// trailing [] reads a text array.

const projectColumns = `
SELECT p.guid, p.name, p.description, p.created_date, p.last_modified_date,
       p.is_phenotips_enabled, p.phenotips_user_id, p.is_mme_enabled,
       p.mme_primary_data_owner, p.mme_contact_url,
       coalesce(array(
         SELECT c.guid
         FROM seqr_projectcategory c
         JOIN seqr_projectcategory_projects cp ON cp.projectcategory_id = c.id
         WHERE cp.project_id = p.id
         ORDER BY c.name
       ), '{}') AS "project_categories[]"
FROM seqr_project p`

const selectAllProjects = projectColumns + `
ORDER BY p.name`

const selectProjectsByGuid = projectColumns + `
WHERE p.guid = ANY($1)
ORDER BY p.name`

const selectProject = projectColumns + `
WHERE p.guid = $1`

const familyColumns = `
SELECT f.id, f.guid, f.family_id, f.display_name, f.description,
       f.analysis_notes, f.analysis_summary, f.causal_inheritance_mode,
       f.analysis_status, f.pedigree_image, f.created_date, f.coded_phenotype,
       f.post_discovery_omim_number, f.internal_analysis_status,
       f.internal_case_review_notes, f.internal_case_review_summary,
       p.guid AS "project.guid", p.name AS "project.name",
       coalesce(array(
         SELECT i.guid FROM seqr_individual i WHERE i.family_id = f.id ORDER BY i.individual_id
       ), '{}') AS "individuals[]"
FROM seqr_family f
LEFT JOIN seqr_project p ON p.id = f.project_id`

const selectFamiliesByProject = familyColumns + `
WHERE p.guid = $1
ORDER BY f.family_id`

const selectFamily = familyColumns + `
WHERE f.guid = $1`

const selectIndividualsByProject = `
SELECT i.guid, i.individual_id, i.paternal_id, i.maternal_id, i.sex, i.affected,
       i.display_name, i.notes, i.created_date, i.last_modified_date,
       i.phenotips_patient_id, i.phenotips_data,
       i.case_review_status, i.case_review_discussion,
       i.case_review_status_last_modified_date,
       u.email AS "case_review_status_last_modified_by.email",
       u.username AS "case_review_status_last_modified_by.username",
       f.guid AS "family.guid",
       p.guid AS "family.project.guid"
FROM seqr_individual i
JOIN seqr_family f ON f.id = i.family_id
JOIN seqr_project p ON p.id = f.project_id
LEFT JOIN auth_user u ON u.id = i.case_review_status_last_modified_by_id
WHERE p.guid = $1
ORDER BY f.family_id, i.individual_id`

const selectSamplesByProject = `
SELECT s.guid, s.sample_id, s.sample_type, s.sample_status, s.created_date,
       i.guid AS "individual.guid",
       f.guid AS "individual.family.guid",
       p.guid AS "individual.family.project.guid"
FROM seqr_sample s
JOIN seqr_individual i ON i.id = s.individual_id
JOIN seqr_family f ON f.id = i.family_id
JOIN seqr_project p ON p.id = f.project_id
WHERE p.guid = $1
ORDER BY i.individual_id, s.sample_id`

const selectDatasetsByProject = `
SELECT d.guid, d.analysis_type, d.source_file_path, d.is_loaded, d.loaded_date,
       d.created_date,
       p.guid AS "project.guid",
       s.sample_type AS "sample.sample_type"
FROM seqr_dataset d
JOIN seqr_project p ON p.id = d.project_id
LEFT JOIN LATERAL (
  SELECT s.sample_type
  FROM seqr_dataset_samples ds
  JOIN seqr_sample s ON s.id = ds.sample_id
  WHERE ds.dataset_id = d.id
  ORDER BY s.id
  LIMIT 1
) s ON true
WHERE p.guid = $1
ORDER BY d.created_date`
