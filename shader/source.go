// Package shader compiles the scene's GLSL program and exposes named
// uniform writes to the rest of the renderer.
package shader

// VertexSource transforms primitive vertices by the per-draw model
// matrix and the frame's view/projection pair, passing world-space
// position, normal, and scaled UVs to the fragment stage.
const VertexSource = `#version 410 core
layout (location = 0) in vec3 in_position;
layout (location = 1) in vec3 in_normal;
layout (location = 2) in vec2 in_uv;

out vec3 frag_position;
out vec3 frag_normal;
out vec2 frag_uv;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

void main() {
    vec4 world = model * vec4(in_position, 1.0);
    frag_position = world.xyz;
    frag_normal = mat3(transpose(inverse(model))) * in_normal;
    frag_uv = in_uv * UVscale;
    gl_Position = projection * view * world;
}
`

// FragmentSource shades each primitive with either a flat color or a
// sampled texture, modulated by up to two point lights and the bound
// material's diffuse/specular response.
const FragmentSource = `#version 410 core
#define TOTAL_POINT_LIGHTS 2

in vec3 frag_position;
in vec3 frag_normal;
in vec2 frag_uv;

out vec4 fragColor;

struct Material {
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    float constant;
    float linear;
    float quadratic;
    bool bActive;
};

uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec3 viewPosition;
uniform Material material;
uniform PointLight pointLights[TOTAL_POINT_LIGHTS];

vec3 shadePointLight(PointLight light, vec3 normal, vec3 viewDir, vec3 baseColor) {
    vec3 lightDir = normalize(light.position - frag_position);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));

    float distance = length(light.position - frag_position);
    float attenuation = 1.0 / (light.constant + light.linear * distance +
        light.quadratic * (distance * distance));

    vec3 ambient = light.ambient * baseColor;
    vec3 diffuse = light.diffuse * diff * material.diffuseColor * baseColor;
    vec3 specular = light.specular * spec * material.specularColor;
    return (ambient + diffuse + specular) * attenuation;
}

void main() {
    vec4 baseColor = bUseTexture ? texture(objectTexture, frag_uv) : objectColor;

    if (!bUseLighting) {
        fragColor = baseColor;
        return;
    }

    vec3 normal = normalize(frag_normal);
    vec3 viewDir = normalize(viewPosition - frag_position);
    vec3 shaded = vec3(0.0);
    for (int i = 0; i < TOTAL_POINT_LIGHTS; i++) {
        if (pointLights[i].bActive) {
            shaded += shadePointLight(pointLights[i], normal, viewDir, baseColor.rgb);
        }
    }
    fragColor = vec4(shaded, baseColor.a);
}
`
